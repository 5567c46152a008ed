// Package domain contains the calendar date value type and its rules.
// Domain errors come in two kinds: type errors (the input is not an
// integer at all) and value errors (the input is an integer but not a
// valid date component). They are infrastructure-agnostic and are mapped
// to HTTP responses by the adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInvalidType indicates a constructor input was not an integer.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidValue indicates an integer input that does not denote a
	// real calendar date component.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnavailable indicates a required dependency is unavailable.
	// Only the API client adapter produces this kind.
	ErrUnavailable = errors.New("unavailable")
)

// TypeError reports a non-integer constructor input.
type TypeError struct {
	Field string
	Value any
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s cannot be a non-integer value (got %v)", e.Field, e.Value)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *TypeError) Unwrap() error {
	return ErrInvalidType
}

// NewTypeError creates a type error for the given field.
func NewTypeError(field string, value any) error {
	return &TypeError{Field: field, Value: value}
}

// ValueError reports a well-typed but semantically invalid input.
type ValueError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}

	return "invalid value: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}

// NewValueError creates a value error with context.
func NewValueError(field, message string, value any) error {
	return &ValueError{Field: field, Message: message, Value: value}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsInvalidType checks if an error is a type error.
func IsInvalidType(err error) bool {
	return errors.Is(err, ErrInvalidType)
}

// IsInvalidValue checks if an error is a value error.
func IsInvalidValue(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
