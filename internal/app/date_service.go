// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and exposes it to the adapters.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dariiabiriuk/dateval/internal/domain"
	"github.com/dariiabiriuk/dateval/internal/platform/logging"
)

// batchConcurrency bounds how many batch items are validated at once.
const batchConcurrency = 8

// DateInput carries raw date components of unknown dynamic type, exactly
// as they arrived on the wire. Type checking is the domain's job, not the
// caller's.
type DateInput struct {
	Day   any
	Month any
	Year  any
}

// DateReport is the full derived view of a validated date.
type DateReport struct {
	Date        domain.Date
	Rendered    string
	LeapYear    bool
	DaysInMonth int
	DayOfYear   int
}

// BatchResult is the outcome for a single item of a batch check.
type BatchResult struct {
	Index  int
	Report *DateReport
	Err    error
}

// Comparison is the result of comparing two validated dates.
type Comparison struct {
	Left        *DateReport
	Right       *DateReport
	Equal       bool
	Less        bool
	Greater     bool
	LessOrEqual bool
	Ordering    int
}

// DateService orchestrates the date use cases. It is stateless apart from
// its logger and metrics; all date logic lives in the domain package.
type DateService struct {
	logger      *slog.Logger
	checks      *prometheus.CounterVec
	comparisons prometheus.Counter
}

// DateServiceConfig contains configuration for the date service.
type DateServiceConfig struct {
	Logger *slog.Logger

	// Registerer receives the service's metrics. Defaults to the global
	// Prometheus registerer; tests pass their own registry.
	Registerer prometheus.Registerer
}

// NewDateService creates a new date service with the provided dependencies.
func NewDateService(cfg DateServiceConfig) *DateService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reg := cfg.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &DateService{
		logger: logger.With(slog.String("component", "app.DateService")),
		checks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dateval_checks_total",
			Help: "Date checks by outcome.",
		}, []string{"outcome"}),
		comparisons: factory.NewCounter(prometheus.CounterOpts{
			Name: "dateval_comparisons_total",
			Help: "Total date comparisons.",
		}),
	}
}

// Check validates the raw components and derives the full report.
// Failures keep their domain error kind so adapters can distinguish type
// errors from value errors.
func (s *DateService) Check(ctx context.Context, in DateInput) (*DateReport, error) {
	logger := logging.FromContext(ctx)

	date, err := domain.FromValues(in.Day, in.Month, in.Year)
	if err != nil {
		s.checks.WithLabelValues(checkOutcome(err)).Inc()
		logger.WarnContext(ctx, "date check failed",
			slog.Any("error", err),
		)

		return nil, err
	}

	s.checks.WithLabelValues("ok").Inc()
	logger.DebugContext(ctx, "date checked",
		slog.String("date", date.String()),
	)

	return newReport(date), nil
}

// CheckBatch validates every item and returns one result per item, in
// input order. Item failures are recorded in the result, not returned;
// items are checked concurrently with bounded parallelism.
func (s *DateService) CheckBatch(ctx context.Context, inputs []DateInput) []BatchResult {
	results := make([]BatchResult, len(inputs))

	// fn never returns an error, so the group error is impossible here.
	_ = ForEachLimit(ctx, batchConcurrency, len(inputs), func(ctx context.Context, i int) error {
		report, err := s.Check(ctx, inputs[i])
		results[i] = BatchResult{Index: i, Report: report, Err: err}

		return nil
	})

	return results
}

// Compare validates both sides concurrently and reports every relational
// predicate between them. Either side failing fails the comparison with
// the side named in the error.
func (s *DateService) Compare(ctx context.Context, left, right DateInput) (*Comparison, error) {
	l, r, err := Parallel2(ctx,
		func(ctx context.Context) (*DateReport, error) {
			report, checkErr := s.Check(ctx, left)
			if checkErr != nil {
				return nil, fmt.Errorf("left date: %w", checkErr)
			}
			return report, nil
		},
		func(ctx context.Context) (*DateReport, error) {
			report, checkErr := s.Check(ctx, right)
			if checkErr != nil {
				return nil, fmt.Errorf("right date: %w", checkErr)
			}
			return report, nil
		},
	)
	if err != nil {
		return nil, err
	}

	s.comparisons.Inc()

	logging.FromContext(ctx).DebugContext(ctx, "dates compared",
		slog.String("left", l.Rendered),
		slog.String("right", r.Rendered),
	)

	return &Comparison{
		Left:        l,
		Right:       r,
		Equal:       l.Date.Equal(r.Date),
		Less:        l.Date.Less(r.Date),
		Greater:     l.Date.Greater(r.Date),
		LessOrEqual: l.Date.LessOrEqual(r.Date),
		Ordering:    l.Date.Compare(r.Date),
	}, nil
}

// LeapYear reports whether the given year is a leap year. Usable for any
// integer year; no instance is required.
func (s *DateService) LeapYear(ctx context.Context, year int) bool {
	leap := domain.IsLeapYear(year)

	logging.FromContext(ctx).DebugContext(ctx, "leap year checked",
		slog.Int("year", year),
		slog.Bool("leap", leap),
	)

	return leap
}

// MonthLength returns the number of days in the given month and year.
// An out-of-range month is a value error.
func (s *DateService) MonthLength(ctx context.Context, month, year int) (int, error) {
	days, err := domain.DaysInMonth(month, year)
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "month length check failed",
			slog.Int("month", month),
			slog.Any("error", err),
		)

		return 0, err
	}

	return days, nil
}

// newReport derives the read-only view of a validated date.
func newReport(date domain.Date) *DateReport {
	return &DateReport{
		Date:        date,
		Rendered:    date.String(),
		LeapYear:    date.LeapYear(),
		DaysInMonth: date.MonthDays(),
		DayOfYear:   date.DayOfYear(),
	}
}

// checkOutcome maps a check error to its metrics label.
func checkOutcome(err error) string {
	switch {
	case domain.IsInvalidType(err):
		return "type_error"
	case domain.IsInvalidValue(err):
		return "value_error"
	default:
		return "error"
	}
}
