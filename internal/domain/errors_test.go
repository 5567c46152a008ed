package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidType,
		ErrInvalidValue,
		ErrUnavailable,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestTypeError(t *testing.T) {
	err := NewTypeError("day", 3.5)

	assert.Equal(t, "day cannot be a non-integer value (got 3.5)", err.Error())
	require.ErrorIs(t, err, ErrInvalidType)
	assert.True(t, IsInvalidType(err))
	assert.False(t, IsInvalidValue(err))

	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "day", typeErr.Field)
	assert.Equal(t, 3.5, typeErr.Value)
	assert.Equal(t, ErrInvalidType, typeErr.Unwrap())
}

func TestValueError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "month",
			message:     "there are only 12 months",
			expectedMsg: "invalid month: there are only 12 months",
		},
		{
			name:        "without field",
			field:       "",
			message:     "something went wrong",
			expectedMsg: "invalid value: something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValueError(tt.field, tt.message, 13)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrInvalidValue)
			assert.True(t, IsInvalidValue(err))

			var valueErr *ValueError
			require.ErrorAs(t, err, &valueErr)
			assert.Equal(t, tt.field, valueErr.Field)
			assert.Equal(t, 13, valueErr.Value)
		})
	}
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("dateval-api", "connection refused")

	assert.Equal(t, `service "dateval-api" unavailable: connection refused`, err.Error())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsUnavailable(err))

	bare := NewUnavailableError("dateval-api", "")
	assert.Equal(t, `service "dateval-api" unavailable`, bare.Error())
}
