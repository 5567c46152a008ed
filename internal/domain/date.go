package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// monthsInYear is the number of months in a Gregorian year.
const monthsInYear = 12

// Date is an immutable calendar date under the proleptic Gregorian
// calendar, restricted to year >= 1. A successfully constructed Date
// always represents a real calendar day; no invalid instance can exist.
// The zero value is not a valid Date and should not be used directly.
type Date struct {
	day   int
	month int
	year  int
}

// NewDate validates and constructs a Date. Validation order: year range,
// then month range, then day range (day validity depends on month/year).
// All failures are value errors.
func NewDate(day, month, year int) (Date, error) {
	if year < 1 {
		return Date{}, NewValueError("year", "there is no such thing as a zero or negative year", year)
	}

	if month < 1 || month > monthsInYear {
		return Date{}, NewValueError("month", "there are only 12 months", month)
	}

	limit, err := DaysInMonth(month, year)
	if err != nil {
		return Date{}, err
	}

	if day < 1 || day > limit {
		return Date{}, NewValueError("day",
			fmt.Sprintf("day %d is not valid for month %d and year %d", day, month, year), day)
	}

	return Date{day: day, month: month, year: year}, nil
}

// FromValues constructs a Date from inputs of unknown dynamic type, as
// they arrive from JSON bodies or command-line arguments. Type checks run
// first, in field order day, month, year: any non-integer input fails with
// a type error naming the field. Range validation then follows NewDate.
func FromValues(day, month, year any) (Date, error) {
	d, err := asInt("day", day)
	if err != nil {
		return Date{}, err
	}

	m, err := asInt("month", month)
	if err != nil {
		return Date{}, err
	}

	y, err := asInt("year", year)
	if err != nil {
		return Date{}, err
	}

	return NewDate(d, m, y)
}

// asInt coerces a dynamic value to int. Anything that is not an integer
// is rejected: floats (whole-valued or not), fractional JSON numbers, and
// non-numeric types all fall through to a type error.
func asInt(field string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, NewValueError(field, "value out of range", v)
		}
		return int(n), nil
	case json.Number:
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return 0, NewTypeError(field, v)
		}
		return int(i), nil
	default:
		return 0, NewTypeError(field, v)
	}
}

// Day returns the day of the month, 1..DaysInMonth(month, year).
func (d Date) Day() int { return d.day }

// Month returns the month, 1..12.
func (d Date) Month() int { return d.month }

// Year returns the year, >= 1.
func (d Date) Year() int { return d.year }

// IsLeapYear reports whether year is a leap year: divisible by 4 and not
// by 100 unless also by 400. It performs no range check.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}

	if year%100 == 0 && year%400 != 0 {
		return false
	}

	return true
}

// DaysInMonth returns the number of days in the given month of the given
// year. It is usable without a constructed Date. A month outside [1,12]
// is a value error.
func DaysInMonth(month, year int) (int, error) {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31, nil
	case 4, 6, 9, 11:
		return 30, nil
	case 2:
		if IsLeapYear(year) {
			return 29, nil
		}
		return 28, nil
	default:
		return 0, NewValueError("month", "invalid month", month)
	}
}

// String renders the date as DD/MM/YYYY: day and month zero-padded to two
// digits, year in plain decimal with no padding.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%d", d.day, d.month, d.year)
}

// Compare orders two dates lexicographically on (year, month, day).
// It returns -1 if d is earlier than other, 0 if equal, +1 if later.
func (d Date) Compare(other Date) int {
	if d.year != other.year {
		return orderOf(d.year, other.year)
	}

	if d.month != other.month {
		return orderOf(d.month, other.month)
	}

	return orderOf(d.day, other.day)
}

func orderOf(a, b int) int {
	if a < b {
		return -1
	}

	if a > b {
		return 1
	}

	return 0
}

// Equal reports whether other is a Date with the same day, month, and
// year. A non-Date operand compares not-equal rather than erroring.
func (d Date) Equal(other any) bool {
	o, ok := asDate(other)
	return ok && d.Compare(o) == 0
}

// Less reports whether d is chronologically earlier than other.
// A non-Date operand yields false for every relational predicate; callers
// should note that this deliberately breaks total-order completeness for
// mixed operands.
func (d Date) Less(other any) bool {
	o, ok := asDate(other)
	return ok && d.Compare(o) < 0
}

// Greater reports whether d is chronologically later than other.
// False for non-Date operands.
func (d Date) Greater(other any) bool {
	o, ok := asDate(other)
	return ok && d.Compare(o) > 0
}

// LessOrEqual reports Less or Equal. False for non-Date operands.
func (d Date) LessOrEqual(other any) bool {
	o, ok := asDate(other)
	return ok && d.Compare(o) <= 0
}

// asDate extracts a Date operand, accepting Date and non-nil *Date.
func asDate(v any) (Date, bool) {
	switch o := v.(type) {
	case Date:
		return o, true
	case *Date:
		if o != nil {
			return *o, true
		}
	}

	return Date{}, false
}

// LeapYear reports whether the date's own year is a leap year.
func (d Date) LeapYear() bool {
	return IsLeapYear(d.year)
}

// MonthDays returns the number of days in the date's own month.
func (d Date) MonthDays() int {
	// The month is known valid, so the error cannot occur.
	n, _ := DaysInMonth(d.month, d.year)
	return n
}

// DayOfYear returns the 1-based ordinal position of the date within its
// year: 1 for January 1st, up to 365 (366 in a leap year) for December
// 31st.
func (d Date) DayOfYear() int {
	total := d.day
	for m := 1; m < d.month; m++ {
		n, _ := DaysInMonth(m, d.year)
		total += n
	}

	return total
}
