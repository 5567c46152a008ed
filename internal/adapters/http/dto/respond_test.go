package dto

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dariiabiriuk/dateval/internal/domain"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	return c, w
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "nil error",
			err:        nil,
			wantStatus: http.StatusOK,
			wantCode:   "",
		},
		{
			name:       "type error",
			err:        domain.NewTypeError("day", 2.5),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeTypeError,
		},
		{
			name:       "value error",
			err:        domain.NewValueError("month", "there are only 12 months", 13),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeValueError,
		},
		{
			name:       "wrapped value error",
			err:        errors.Join(errors.New("left date"), domain.NewValueError("year", "there is no such thing as a zero or negative year", 0)),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeValueError,
		},
		{
			name:       "unavailable",
			err:        domain.NewUnavailableError("dateapi", "connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:       "unknown error",
			err:        errors.New("something odd"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)

			if tt.err == nil {
				assert.Nil(t, resp)
				return
			}

			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestMapDomainError_Details(t *testing.T) {
	t.Run("type error carries field detail", func(t *testing.T) {
		_, resp := MapDomainError(domain.NewTypeError("day", "not a number"))
		assert.Equal(t, map[string]string{"day": "must be an integer"}, resp.Error.Details)
	})

	t.Run("value error carries field detail", func(t *testing.T) {
		_, resp := MapDomainError(domain.NewValueError("month", "there are only 12 months", 0))
		assert.Equal(t, map[string]string{"month": "there are only 12 months"}, resp.Error.Details)
	})

	t.Run("internal error hides the cause", func(t *testing.T) {
		_, resp := MapDomainError(errors.New("db password leaked"))
		assert.NotContains(t, resp.Error.Message, "password")
	})
}

func TestHandleError(t *testing.T) {
	c, w := newTestContext(t)

	HandleError(c, domain.NewValueError("day", "day 31 is not valid for month 2 and year 2020", 31))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrorCodeValueError)
	assert.Contains(t, w.Body.String(), "day 31 is not valid for month 2 and year 2020")
}

func TestHandleErrorCode(t *testing.T) {
	c, w := newTestContext(t)

	HandleErrorCode(c, ErrorCodeBadRequest, "request body could not be parsed")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrorCodeBadRequest)
}

func TestHandleBindingError(t *testing.T) {
	t.Run("validation failure includes field details", func(t *testing.T) {
		type sample struct {
			Name string `json:"name" validate:"required"`
		}

		err := Validate(&sample{})
		require.Error(t, err)

		c, w := newTestContext(t)
		HandleBindingError(c, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrorCodeValidation)
		assert.Contains(t, w.Body.String(), "name")
	})

	t.Run("malformed body yields bad request", func(t *testing.T) {
		c, w := newTestContext(t)
		HandleBindingError(c, ErrBinding)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrorCodeBadRequest)
	})
}

func TestAbortWithErrorCode(t *testing.T) {
	c, w := newTestContext(t)

	AbortWithErrorCode(c, ErrorCodeUnauthorized, "authentication required")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
}

func TestAbortWithError(t *testing.T) {
	c, w := newTestContext(t)

	AbortWithError(c, domain.NewUnavailableError("dateapi", "circuit open"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.True(t, c.IsAborted())
}
