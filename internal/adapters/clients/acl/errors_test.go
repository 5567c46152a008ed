package acl

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dariiabiriuk/dateval/internal/adapters/clients"
	"github.com/dariiabiriuk/dateval/internal/domain"
)

func errorBody(code, message string, details map[string]string) io.ReadCloser {
	body := fmt.Sprintf(`{"error":{"code":%q,"message":%q`, code, message)
	if len(details) > 0 {
		body += `,"details":{`
		first := true
		for k, v := range details {
			if !first {
				body += ","
			}
			body += fmt.Sprintf("%q:%q", k, v)
			first = false
		}
		body += "}"
	}
	body += "}}"

	return io.NopCloser(strings.NewReader(body))
}

func TestParseErrorResponse(t *testing.T) {
	t.Run("nested format", func(t *testing.T) {
		resp := ParseErrorResponse(strings.NewReader(
			`{"error":{"code":"VALUE_ERROR","message":"bad date"}}`))

		require.NotNil(t, resp)
		assert.Equal(t, "VALUE_ERROR", resp.GetCode())
		assert.Equal(t, "bad date", resp.GetMessage())
	})

	t.Run("flat format", func(t *testing.T) {
		resp := ParseErrorResponse(strings.NewReader(
			`{"code":"TYPE_ERROR","message":"not an integer"}`))

		require.NotNil(t, resp)
		assert.Equal(t, "TYPE_ERROR", resp.GetCode())
		assert.Equal(t, "not an integer", resp.GetMessage())
	})

	t.Run("nested wins over flat", func(t *testing.T) {
		resp := ParseErrorResponse(strings.NewReader(
			`{"error":{"code":"VALUE_ERROR","message":"inner"},"code":"OTHER","message":"outer"}`))

		require.NotNil(t, resp)
		assert.Equal(t, "VALUE_ERROR", resp.GetCode())
		assert.Equal(t, "inner", resp.GetMessage())
	})

	t.Run("empty body", func(t *testing.T) {
		assert.Nil(t, ParseErrorResponse(strings.NewReader("")))
	})

	t.Run("malformed body", func(t *testing.T) {
		assert.Nil(t, ParseErrorResponse(strings.NewReader("not json")))
	})

	t.Run("no meaningful data", func(t *testing.T) {
		assert.Nil(t, ParseErrorResponse(strings.NewReader("{}")))
	})

	t.Run("nil reader", func(t *testing.T) {
		assert.Nil(t, ParseErrorResponse(nil))
	})
}

func TestMapHTTPError_ClientErrors(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		contains  string
	}{
		{
			name:      "circuit open",
			clientErr: clients.ErrCircuitOpen,
			contains:  "circuit breaker open",
		},
		{
			name:      "max retries exceeded",
			clientErr: fmt.Errorf("%w: server error: 503", clients.ErrMaxRetriesExceeded),
			contains:  "max retries exceeded",
		},
		{
			name:      "generic transport error",
			clientErr: errors.New("connection refused"),
			contains:  "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapHTTPError(nil, tt.clientErr, "date-api", "check date")

			require.Error(t, err)
			assert.True(t, domain.IsUnavailable(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestMapHTTPError_NilResponse(t *testing.T) {
	err := MapHTTPError(nil, nil, "date-api", "check date")

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "no response received")
}

func TestMapHTTPError_SuccessStatus(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusOK}

	assert.NoError(t, MapHTTPError(resp, nil, "date-api", "check date"))
}

func TestMapHTTPError_TypeError(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Body: errorBody("TYPE_ERROR", "day cannot be a non-integer value (got 2.5)",
			map[string]string{"day": "must be an integer"}),
	}

	err := MapHTTPError(resp, nil, "date-api", "check date")

	require.Error(t, err)
	assert.True(t, domain.IsInvalidType(err))
	assert.False(t, domain.IsInvalidValue(err))
	assert.Contains(t, err.Error(), "day cannot be a non-integer value")
}

func TestMapHTTPError_ValueError(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Body: errorBody("VALUE_ERROR", "invalid day: day 31 is not valid for month 2 and year 2020",
			map[string]string{"day": "day 31 is not valid for month 2 and year 2020"}),
	}

	err := MapHTTPError(resp, nil, "date-api", "check date")

	require.Error(t, err)
	assert.True(t, domain.IsInvalidValue(err))

	var valueErr *domain.ValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, "day", valueErr.Field)
	assert.Equal(t, "day 31 is not valid for month 2 and year 2020", valueErr.Message)
}

func TestMapHTTPError_ValidationError(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Body: errorBody("VALIDATION_ERROR", "request validation failed",
			map[string]string{"month": "month is required"}),
	}

	err := MapHTTPError(resp, nil, "date-api", "check date")

	require.Error(t, err)
	assert.True(t, domain.IsInvalidValue(err))
	assert.Contains(t, err.Error(), "month is required")
}

func TestMapHTTPError_BadRequestWithoutEnvelope(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Body:       io.NopCloser(strings.NewReader("plain text error")),
	}

	err := MapHTTPError(resp, nil, "date-api", "check date")

	require.Error(t, err)
	assert.True(t, domain.IsInvalidValue(err))
	assert.Contains(t, err.Error(), "invalid request")
}

func TestMapHTTPError_ServerErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "service unavailable", status: http.StatusServiceUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway},
		{name: "gateway timeout", status: http.StatusGatewayTimeout},
		{name: "internal error", status: http.StatusInternalServerError},
		{name: "not found", status: http.StatusNotFound},
		{name: "too many requests", status: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{
				StatusCode: tt.status,
				Body:       io.NopCloser(strings.NewReader("")),
			}

			err := MapHTTPError(resp, nil, "date-api", "check date")

			require.Error(t, err)
			assert.True(t, domain.IsUnavailable(err))
		})
	}
}

func TestMapHTTPError_RemoteCodeWinsOverStatus(t *testing.T) {
	// A 503 carrying the remote TIMEOUT code still maps to unavailable,
	// and a 400 carrying SERVICE_UNAVAILABLE maps by code, not status.
	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Body:       errorBody("SERVICE_UNAVAILABLE", "downstream degraded", nil),
	}

	err := MapHTTPError(resp, nil, "date-api", "check date")

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "downstream degraded")
}

func TestMapHTTPError_UnknownCodeFallsBackToStatus(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Body:       errorBody("SOMETHING_NEW", "strange failure", nil),
	}

	err := MapHTTPError(resp, nil, "date-api", "check date")

	require.Error(t, err)
	assert.True(t, domain.IsInvalidValue(err))
	assert.Contains(t, err.Error(), "strange failure")
}
