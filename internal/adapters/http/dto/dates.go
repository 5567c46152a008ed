package dto

import "encoding/json"

// MaxBatchSize caps the number of dates accepted in one batch request.
const MaxBatchSize = 100

// DateComponents carries the raw day/month/year of a single date.
// json.Number keeps fractional inputs distinguishable from integers, so a
// request like {"day": 2.5} surfaces as a type error in the domain instead
// of being truncated during decoding.
type DateComponents struct {
	Day   json.Number `json:"day"   validate:"required"`
	Month json.Number `json:"month" validate:"required"`
	Year  json.Number `json:"year"  validate:"required"`
}

// CheckDateRequest is the body of POST /api/v1/dates/check.
type CheckDateRequest struct {
	DateComponents
}

// CheckBatchRequest is the body of POST /api/v1/dates/check-batch.
type CheckBatchRequest struct {
	Dates []DateComponents `json:"dates" validate:"required,min=1,max=100,dive"`
}

// CompareDatesRequest is the body of POST /api/v1/dates/compare.
type CompareDatesRequest struct {
	Left  DateComponents `json:"left"  validate:"required"`
	Right DateComponents `json:"right" validate:"required"`
}

// DateReportResponse describes a validated date.
type DateReportResponse struct {
	Rendered    string `json:"rendered"`
	Day         int    `json:"day"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	LeapYear    bool   `json:"leapYear"`
	DaysInMonth int    `json:"daysInMonth"`
	DayOfYear   int    `json:"dayOfYear"`
}

// BatchItemResponse is one entry of a batch check result. Exactly one of
// Report and Error is set.
type BatchItemResponse struct {
	Index  int                 `json:"index"`
	Report *DateReportResponse `json:"report,omitempty"`
	Error  *ErrorDetail        `json:"error,omitempty"`
}

// CheckBatchResponse is the body of a batch check result.
type CheckBatchResponse struct {
	Results []BatchItemResponse `json:"results"`
}

// CompareDatesResponse describes how two dates relate.
type CompareDatesResponse struct {
	Left        DateReportResponse `json:"left"`
	Right       DateReportResponse `json:"right"`
	Equal       bool               `json:"equal"`
	Less        bool               `json:"less"`
	Greater     bool               `json:"greater"`
	LessOrEqual bool               `json:"lessOrEqual"`
	Ordering    int                `json:"ordering"`
}

// LeapYearResponse is the body of GET /api/v1/calendar/leap-years/:year.
type LeapYearResponse struct {
	Year int  `json:"year"`
	Leap bool `json:"leap"`
}

// MonthDaysResponse is the body of GET /api/v1/calendar/months/:month/days.
type MonthDaysResponse struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	Days  int `json:"days"`
}
