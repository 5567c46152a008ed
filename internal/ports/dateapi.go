// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing callers to depend
// on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error kinds (ErrInvalidType, ErrInvalidValue, ...)
//   - Keep interfaces small and focused
package ports

import (
	"context"
)

// DateArgs names the three components of a date being sent to the API.
type DateArgs struct {
	Day   int
	Month int
	Year  int
}

// DateFacts is everything the API derives from a valid date.
type DateFacts struct {
	// Rendered is the DD/MM/YYYY form.
	Rendered string

	// Day, Month, Year echo the validated components.
	Day   int
	Month int
	Year  int

	// LeapYear reports whether the date's year is a leap year.
	LeapYear bool

	// DaysInMonth is the length of the date's month in its year.
	DaysInMonth int

	// DayOfYear is the 1-based ordinal position within the year.
	DayOfYear int
}

// DateComparison holds every relational predicate between two dates.
type DateComparison struct {
	Equal       bool
	Less        bool
	Greater     bool
	LessOrEqual bool

	// Ordering is -1, 0, or 1 for left earlier, equal, later.
	Ordering int
}

// DateAPI is the client-side contract for a remote dateval service.
// Implementations translate transport failures into domain error kinds:
// rejected dates surface as ErrInvalidValue/ErrInvalidType, an unreachable
// service as ErrUnavailable.
type DateAPI interface {
	// CheckDate validates a date and returns its derived facts.
	CheckDate(ctx context.Context, day, month, year int) (*DateFacts, error)

	// CompareDates compares two dates on the (year, month, day) key.
	CompareDates(ctx context.Context, left, right DateArgs) (*DateComparison, error)

	// LeapYear reports whether the year is a leap year.
	LeapYear(ctx context.Context, year int) (bool, error)

	// DaysInMonth returns the length of a month in a year; it needs no
	// constructed date.
	DaysInMonth(ctx context.Context, month, year int) (int, error)
}
