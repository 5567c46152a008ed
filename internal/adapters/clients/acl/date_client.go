package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dariiabiriuk/dateval/internal/adapters/clients"
	"github.com/dariiabiriuk/dateval/internal/platform/logging"
	"github.com/dariiabiriuk/dateval/internal/ports"
)

// DateAPIClientConfig contains configuration for the date API client.
type DateAPIClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the date API endpoint.
	Client *clients.Client

	// ServiceName identifies the remote service in errors and health
	// checks. Defaults to "date-api".
	ServiceName string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// DateAPIClient implements ports.DateAPI against a remote dateval service.
// It translates wire DTOs and error envelopes to domain types so callers
// never see the remote representation.
type DateAPIClient struct {
	BaseAdapter

	logger *slog.Logger
}

// NewDateAPIClient creates a new date API client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewDateAPIClient(cfg DateAPIClientConfig) *DateAPIClient {
	if cfg.Client == nil {
		panic("DateAPIClient: Client is required")
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "date-api"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &DateAPIClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, serviceName),
		logger:      logger,
	}
}

// dateComponentsDTO is the wire form of a single date. Components are sent
// as plain integers; the remote side re-validates them.
type dateComponentsDTO struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// compareRequestDTO is the wire form of a comparison request.
type compareRequestDTO struct {
	Left  dateComponentsDTO `json:"left"`
	Right dateComponentsDTO `json:"right"`
}

// dateReportDTO is the wire form of a validated date report.
type dateReportDTO struct {
	Rendered    string `json:"rendered"`
	Day         int    `json:"day"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	LeapYear    bool   `json:"leapYear"`
	DaysInMonth int    `json:"daysInMonth"`
	DayOfYear   int    `json:"dayOfYear"`
}

// compareResponseDTO is the wire form of a comparison result.
type compareResponseDTO struct {
	Left        dateReportDTO `json:"left"`
	Right       dateReportDTO `json:"right"`
	Equal       bool          `json:"equal"`
	Less        bool          `json:"less"`
	Greater     bool          `json:"greater"`
	LessOrEqual bool          `json:"lessOrEqual"`
	Ordering    int           `json:"ordering"`
}

// leapYearResponseDTO is the wire form of a leap-year lookup.
type leapYearResponseDTO struct {
	Year int  `json:"year"`
	Leap bool `json:"leap"`
}

// monthDaysResponseDTO is the wire form of a month-length lookup.
type monthDaysResponseDTO struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	Days  int `json:"days"`
}

// CheckDate validates a date remotely and returns its derived facts.
// Implements ports.DateAPI.
func (c *DateAPIClient) CheckDate(ctx context.Context, day, month, year int) (*ports.DateFacts, error) {
	const path = "/api/v1/dates/check"
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))
	c.logger.DebugContext(ctx, "checking date",
		slog.Int("day", day),
		slog.Int("month", month),
		slog.Int("year", year))

	body, err := c.PostJSON(ctx, path, dateComponentsDTO{Day: day, Month: month, Year: year}, "check date")
	if err != nil {
		return nil, err
	}

	report, err := DecodeResponse[dateReportDTO](body)
	if err != nil {
		return nil, fmt.Errorf("check date: %w", err)
	}

	facts := translateReport(report)

	c.logger.Log(ctx, logging.LevelTrace, "translated wire DTO to domain",
		slog.String("rendered", facts.Rendered))

	return facts, nil
}

// CompareDates compares two dates remotely on the (year, month, day) key.
// Implements ports.DateAPI.
func (c *DateAPIClient) CompareDates(ctx context.Context, left, right ports.DateArgs) (*ports.DateComparison, error) {
	const path = "/api/v1/dates/compare"
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	req := compareRequestDTO{
		Left:  dateComponentsDTO{Day: left.Day, Month: left.Month, Year: left.Year},
		Right: dateComponentsDTO{Day: right.Day, Month: right.Month, Year: right.Year},
	}

	body, err := c.PostJSON(ctx, path, req, "compare dates")
	if err != nil {
		return nil, err
	}

	resp, err := DecodeResponse[compareResponseDTO](body)
	if err != nil {
		return nil, fmt.Errorf("compare dates: %w", err)
	}

	return &ports.DateComparison{
		Equal:       resp.Equal,
		Less:        resp.Less,
		Greater:     resp.Greater,
		LessOrEqual: resp.LessOrEqual,
		Ordering:    resp.Ordering,
	}, nil
}

// LeapYear reports whether the year is a leap year.
// Implements ports.DateAPI.
func (c *DateAPIClient) LeapYear(ctx context.Context, year int) (bool, error) {
	path := fmt.Sprintf("/api/v1/calendar/leap-years/%d", year)
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	body, err := c.Get(ctx, path, "leap year lookup")
	if err != nil {
		return false, err
	}

	resp, err := DecodeResponse[leapYearResponseDTO](body)
	if err != nil {
		return false, fmt.Errorf("leap year lookup: %w", err)
	}

	return resp.Leap, nil
}

// DaysInMonth returns the length of a month in a year.
// Implements ports.DateAPI.
func (c *DateAPIClient) DaysInMonth(ctx context.Context, month, year int) (int, error) {
	path := fmt.Sprintf("/api/v1/calendar/months/%d/days?year=%d", month, year)
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	body, err := c.Get(ctx, path, "month length lookup")
	if err != nil {
		return 0, err
	}

	resp, err := DecodeResponse[monthDaysResponseDTO](body)
	if err != nil {
		return 0, fmt.Errorf("month length lookup: %w", err)
	}

	return resp.Days, nil
}

// translateReport converts the wire report to domain facts.
// This isolates the domain from wire format changes.
func translateReport(report *dateReportDTO) *ports.DateFacts {
	return &ports.DateFacts{
		Rendered:    report.Rendered,
		Day:         report.Day,
		Month:       report.Month,
		Year:        report.Year,
		LeapYear:    report.LeapYear,
		DaysInMonth: report.DaysInMonth,
		DayOfYear:   report.DayOfYear,
	}
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *DateAPIClient) Name() string {
	return c.ServiceName()
}

// Check performs a health check by calling the API's liveness endpoint.
// Implements ports.HealthChecker.
func (c *DateAPIClient) Check(ctx context.Context) error {
	resp, err := c.Client().Get(ctx, "/-/live")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("date API returned status %d", resp.StatusCode)
	}

	return nil
}
