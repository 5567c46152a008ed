package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/dariiabiriuk/dateval/internal/domain"
	"github.com/dariiabiriuk/dateval/internal/platform/logging"
)

// GetTraceID extracts the OpenTelemetry trace ID from the request context.
// Returns an empty string when no span is recording.
func GetTraceID(c *gin.Context) string {
	span := trace.SpanFromContext(c.Request.Context())
	if span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

// MapDomainError maps a domain error to an HTTP status code and error response.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsInvalidType(err):
		resp := NewErrorResponse(ErrorCodeTypeError, err.Error())

		var typeErr *domain.TypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			resp.Error.Details = map[string]string{
				typeErr.Field: "must be an integer",
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsInvalidValue(err):
		resp := NewErrorResponse(ErrorCodeValueError, err.Error())

		var valueErr *domain.ValueError
		if errors.As(err, &valueErr) && valueErr.Field != "" {
			resp.Error.Details = map[string]string{
				valueErr.Field: valueErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(
			ErrorCodeUnavailable,
			err.Error(),
		)

	default:
		// Unknown errors get a generic message to avoid leaking internals
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// HandleError writes an error response to the gin.Context.
// It maps domain errors to HTTP responses and includes the trace ID if available.
func HandleError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)
	errResp.TraceID = GetTraceID(c)

	// Log internal errors with full details
	if status == http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("internal error",
			"error", err.Error(),
			"trace_id", errResp.TraceID,
		)
	}

	c.JSON(status, errResp)
}

// HandleErrorCode writes an error response with a specific error code.
// Use this for adapter-level errors (e.g., validation, bad request) that
// don't originate from domain errors.
func HandleErrorCode(c *gin.Context, code, message string) {
	errResp := NewErrorResponse(code, message)
	errResp.TraceID = GetTraceID(c)

	c.JSON(HTTPStatusFromCode(code), errResp)
}

// HandleValidationErrors writes a 400 response with field-level validation errors.
func HandleValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	errResp := NewErrorResponseWithDetails(
		ErrorCodeValidation,
		"request validation failed",
		fieldErrors,
	)
	errResp.TraceID = GetTraceID(c)

	c.JSON(http.StatusBadRequest, errResp)
}

// HandleBindingError inspects a BindAndValidate error and writes the
// appropriate response: field details for validation failures, a generic
// bad-request envelope for malformed bodies.
func HandleBindingError(c *gin.Context, err error) {
	if IsValidationError(err) {
		HandleValidationErrors(c, ValidationErrors(err))
		return
	}

	HandleErrorCode(c, ErrorCodeBadRequest, "request body could not be parsed")
}

// AbortWithError aborts the request chain and writes an error response.
// Use this in middleware when you want to stop further processing.
func AbortWithError(c *gin.Context, err error) {
	status, errResp := MapDomainError(err)
	errResp.TraceID = GetTraceID(c)

	c.AbortWithStatusJSON(status, errResp)
}

// AbortWithErrorCode aborts the request chain with a specific error code.
func AbortWithErrorCode(c *gin.Context, code, message string) {
	errResp := NewErrorResponse(code, message)
	errResp.TraceID = GetTraceID(c)

	c.AbortWithStatusJSON(HTTPStatusFromCode(code), errResp)
}
