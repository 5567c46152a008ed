package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dariiabiriuk/dateval/internal/adapters/clients"
	"github.com/dariiabiriuk/dateval/internal/domain"
)

// ErrorResponse represents a standard error response from the remote API.
// It supports both nested format (error.code/message) and flat format (code/message).
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorDetail contains error information from the remote API.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// GetCode returns the error code from either nested or top-level format.
func (e *ErrorResponse) GetCode() string {
	if e.Error.Code != "" {
		return e.Error.Code
	}

	return e.Code
}

// GetMessage returns the error message from either nested or top-level format.
func (e *ErrorResponse) GetMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}

	return e.Message
}

// Remote error codes that map to domain error kinds.
const (
	// RemoteCodeTypeError indicates a component was not an integer.
	RemoteCodeTypeError = "TYPE_ERROR"
	// RemoteCodeValueError indicates an integer that is not a valid date component.
	RemoteCodeValueError = "VALUE_ERROR"
	// RemoteCodeValidation indicates the request body failed field validation.
	RemoteCodeValidation = "VALIDATION_ERROR"
	// RemoteCodeBadRequest indicates the request body could not be parsed.
	RemoteCodeBadRequest = "BAD_REQUEST"
	// RemoteCodeUnavailable indicates the remote service is degraded.
	RemoteCodeUnavailable = "SERVICE_UNAVAILABLE"
	// RemoteCodeTimeout indicates the remote service timed out internally.
	RemoteCodeTimeout = "TIMEOUT"
)

// ParseErrorResponse attempts to parse an error response body.
// Returns nil if the body is empty or cannot be parsed.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return nil
	}

	// Check if we got any meaningful data
	if errResp.GetCode() == "" && errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError maps an HTTP response to a domain error.
// This function handles:
//   - Remote error codes and HTTP status codes → domain error kinds
//   - Error response body parsing for additional context
//   - Client-level errors (circuit breaker, retries exhausted)
//
// Parameters:
//   - resp: The HTTP response (may be nil for transport errors)
//   - clientErr: Any error from the HTTP client (may be nil)
//   - serviceName: Name of the remote service for error context
//   - operation: The operation being performed (e.g., "check date")
//
// Returns a domain error appropriate for the failure type.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	// Handle client-level errors first (no response received)
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	// Success responses should not call this function
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	// Parse error body for additional context
	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation)
}

// mapClientError translates client-level errors to domain errors.
func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))

	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

// mapStatusCode translates an error response to a domain error. The remote
// error code takes precedence over the HTTP status, since a 400 can carry
// either a type or a value rejection.
func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation string) error {
	message := defaultMessageForStatus(status, operation)
	if errResp != nil && errResp.GetMessage() != "" {
		message = errResp.GetMessage()
	}

	if errResp != nil {
		if err := mapRemoteCode(errResp, serviceName, message); err != nil {
			return err
		}
	}

	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.NewValueError("", message, nil)

	case http.StatusTooManyRequests:
		return domain.NewUnavailableError(serviceName, "rate limit exceeded")

	default:
		return domain.NewUnavailableError(serviceName, message)
	}
}

// mapRemoteCode maps a remote error code to a domain error.
// Returns nil for codes with no direct mapping, letting the HTTP status
// decide instead.
func mapRemoteCode(errResp *ErrorResponse, serviceName, message string) error {
	switch errResp.GetCode() {
	case RemoteCodeTypeError:
		// The offending operand stays on the remote side, so the
		// sentinel is wrapped with the remote message instead of
		// rebuilding a TypeError.
		return fmt.Errorf("%s: %w", message, domain.ErrInvalidType)

	case RemoteCodeValueError, RemoteCodeValidation, RemoteCodeBadRequest:
		field, detail := firstDetail(errResp.Error.Details)
		if detail == "" {
			detail = message
		}

		return domain.NewValueError(field, detail, nil)

	case RemoteCodeUnavailable, RemoteCodeTimeout:
		return domain.NewUnavailableError(serviceName, message)

	default:
		return nil
	}
}

// firstDetail returns an arbitrary entry from a details map. The remote
// API attaches at most one field per rejection.
func firstDetail(details map[string]string) (field, message string) {
	for k, v := range details {
		return k, v
	}

	return "", ""
}

// defaultMessageForStatus returns a default message for an HTTP status.
func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusNotFound:
		return "endpoint not found"
	case http.StatusTooManyRequests:
		return "rate limit exceeded"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	case http.StatusGatewayTimeout:
		return "upstream timeout"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}
