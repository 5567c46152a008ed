// Package main is a demonstration driver for the date value type. It
// constructs a few reference dates (one intentionally invalid), prints
// each construction result, and walks through the comparison and
// calendar queries. With -addr it runs the same sequence against a
// remote dateval service through the API client.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dariiabiriuk/dateval/internal/adapters/clients"
	"github.com/dariiabiriuk/dateval/internal/adapters/clients/acl"
	"github.com/dariiabiriuk/dateval/internal/domain"
	"github.com/dariiabiriuk/dateval/internal/platform/config"
	"github.com/dariiabiriuk/dateval/internal/ports"
)

func main() {
	addr := flag.String("addr", "", "base URL of a remote dateval service; empty runs in-process")
	timeout := flag.Duration("timeout", 10*time.Second, "overall deadline for the demo sequence")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	api, err := buildAPI(*addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := runDemo(ctx, api); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// buildAPI selects the in-process implementation or the remote client.
func buildAPI(addr string) (ports.DateAPI, error) {
	if addr == "" {
		return localDateAPI{}, nil
	}

	// Keep client noise off the demo output.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	client, err := clients.New(&clients.Config{
		BaseURL:     addr,
		ServiceName: "dateval-api",
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     time.Second,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       10 * time.Second,
			HalfOpenLimit: 2,
		},
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating client for %s: %w", addr, err)
	}

	return acl.NewDateAPIClient(acl.DateAPIClientConfig{
		Client: client,
		Logger: logger,
	}), nil
}

// runDemo walks the reference sequence: four constructions (the last is
// invalid on purpose), pairwise comparisons, then the calendar queries.
func runDemo(ctx context.Context, api ports.DateAPI) error {
	samples := []ports.DateArgs{
		{Day: 28, Month: 9, Year: 2007},
		{Day: 3, Month: 11, Year: 1986},
		{Day: 22, Month: 11, Year: 2002},
		{Day: 31, Month: 2, Year: 2020},
	}

	var valid []ports.DateArgs

	fmt.Println("-- construction --")
	for _, s := range samples {
		facts, err := api.CheckDate(ctx, s.Day, s.Month, s.Year)
		if err != nil {
			if domain.IsInvalidValue(err) || domain.IsInvalidType(err) {
				fmt.Printf("%d/%d/%d rejected: %v\n", s.Day, s.Month, s.Year, err)
				continue
			}

			return err
		}

		fmt.Printf("%s constructed (leap year: %t, days in month: %d, day of year: %d)\n",
			facts.Rendered, facts.LeapYear, facts.DaysInMonth, facts.DayOfYear)
		valid = append(valid, s)
	}

	if len(valid) < 2 {
		return fmt.Errorf("need at least two valid dates, got %d", len(valid))
	}

	first, second := valid[0], valid[1]

	fmt.Println("-- comparison --")
	cmp, err := api.CompareDates(ctx, first, second)
	if err != nil {
		return err
	}

	fmt.Printf("%d/%d/%d == %d/%d/%d: %t\n", first.Day, first.Month, first.Year,
		second.Day, second.Month, second.Year, cmp.Equal)
	fmt.Printf("%d/%d/%d <  %d/%d/%d: %t\n", first.Day, first.Month, first.Year,
		second.Day, second.Month, second.Year, cmp.Less)
	fmt.Printf("%d/%d/%d >  %d/%d/%d: %t\n", first.Day, first.Month, first.Year,
		second.Day, second.Month, second.Year, cmp.Greater)
	fmt.Printf("%d/%d/%d <= %d/%d/%d: %t\n", first.Day, first.Month, first.Year,
		second.Day, second.Month, second.Year, cmp.LessOrEqual)

	fmt.Println("-- calendar queries --")
	for _, s := range []ports.DateArgs{first, second} {
		leap, leapErr := api.LeapYear(ctx, s.Year)
		if leapErr != nil {
			return leapErr
		}

		fmt.Printf("%d is a leap year: %t\n", s.Year, leap)
	}

	days, err := api.DaysInMonth(ctx, first.Month, first.Year)
	if err != nil {
		return err
	}

	fmt.Printf("month %d of %d has %d days\n", first.Month, first.Year, days)

	facts, err := api.CheckDate(ctx, first.Day, first.Month, first.Year)
	if err != nil {
		return err
	}

	fmt.Printf("%s is day %d of year %d\n", facts.Rendered, facts.DayOfYear, facts.Year)

	return nil
}

// localDateAPI runs the sequence against the domain directly, without a
// server. It implements ports.DateAPI.
type localDateAPI struct{}

func (localDateAPI) CheckDate(_ context.Context, day, month, year int) (*ports.DateFacts, error) {
	d, err := domain.NewDate(day, month, year)
	if err != nil {
		return nil, err
	}

	return &ports.DateFacts{
		Rendered:    d.String(),
		Day:         d.Day(),
		Month:       d.Month(),
		Year:        d.Year(),
		LeapYear:    d.LeapYear(),
		DaysInMonth: d.MonthDays(),
		DayOfYear:   d.DayOfYear(),
	}, nil
}

func (localDateAPI) CompareDates(_ context.Context, left, right ports.DateArgs) (*ports.DateComparison, error) {
	a, err := domain.NewDate(left.Day, left.Month, left.Year)
	if err != nil {
		return nil, err
	}

	b, err := domain.NewDate(right.Day, right.Month, right.Year)
	if err != nil {
		return nil, err
	}

	return &ports.DateComparison{
		Equal:       a.Equal(b),
		Less:        a.Less(b),
		Greater:     a.Greater(b),
		LessOrEqual: a.LessOrEqual(b),
		Ordering:    a.Compare(b),
	}, nil
}

func (localDateAPI) LeapYear(_ context.Context, year int) (bool, error) {
	return domain.IsLeapYear(year), nil
}

func (localDateAPI) DaysInMonth(_ context.Context, month, year int) (int, error) {
	return domain.DaysInMonth(month, year)
}
