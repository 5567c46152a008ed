package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dariiabiriuk/dateval/internal/adapters/http/dto"
	"github.com/dariiabiriuk/dateval/internal/app"
	"github.com/dariiabiriuk/dateval/internal/domain"
)

// DateHandler handles date validation and calendar HTTP endpoints.
type DateHandler struct {
	service *app.DateService
}

// NewDateHandler creates a new date handler.
func NewDateHandler(service *app.DateService) *DateHandler {
	return &DateHandler{
		service: service,
	}
}

// toDateInput converts wire components to a dynamic service input.
// json.Number values pass through untouched so the domain sees the exact
// numeric text the client sent.
func toDateInput(c dto.DateComponents) app.DateInput {
	return app.DateInput{
		Day:   c.Day,
		Month: c.Month,
		Year:  c.Year,
	}
}

// toReportResponse converts a service report to an HTTP response.
func toReportResponse(r *app.DateReport) *dto.DateReportResponse {
	return &dto.DateReportResponse{
		Rendered:    r.Rendered,
		Day:         r.Date.Day(),
		Month:       r.Date.Month(),
		Year:        r.Date.Year(),
		LeapYear:    r.LeapYear,
		DaysInMonth: r.DaysInMonth,
		DayOfYear:   r.DayOfYear,
	}
}

// CheckDate handles POST /api/v1/dates/check
// Validates a single date and returns its derived facts.
//
// @Summary Validate a date
// @Description Validates day/month/year components and returns rendered form, leap year, days in month and day of year
// @Tags dates
// @Accept json
// @Produce json
// @Success 200 {object} dto.DateReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/dates/check [post]
func (h *DateHandler) CheckDate(c *gin.Context) {
	var req dto.CheckDateRequest

	err := dto.BindAndValidate(c, &req)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	report, err := h.service.Check(c.Request.Context(), toDateInput(req.DateComponents))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReportResponse(report))
}

// CheckBatch handles POST /api/v1/dates/check-batch
// Validates up to 100 dates in one request. Each item succeeds or fails
// independently; the response preserves input order.
//
// @Summary Validate a batch of dates
// @Tags dates
// @Accept json
// @Produce json
// @Success 200 {object} dto.CheckBatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/dates/check-batch [post]
func (h *DateHandler) CheckBatch(c *gin.Context) {
	var req dto.CheckBatchRequest

	err := dto.BindAndValidate(c, &req)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	inputs := make([]app.DateInput, len(req.Dates))
	for i, d := range req.Dates {
		inputs[i] = toDateInput(d)
	}

	results := h.service.CheckBatch(c.Request.Context(), inputs)

	resp := dto.CheckBatchResponse{
		Results: make([]dto.BatchItemResponse, len(results)),
	}

	for i, res := range results {
		item := dto.BatchItemResponse{Index: res.Index}

		if res.Err != nil {
			_, errResp := dto.MapDomainError(res.Err)
			item.Error = &errResp.Error
		} else {
			item.Report = toReportResponse(res.Report)
		}

		resp.Results[i] = item
	}

	c.JSON(http.StatusOK, resp)
}

// CompareDates handles POST /api/v1/dates/compare
// Validates both dates and reports how they relate.
//
// @Summary Compare two dates
// @Tags dates
// @Accept json
// @Produce json
// @Success 200 {object} dto.CompareDatesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/dates/compare [post]
func (h *DateHandler) CompareDates(c *gin.Context) {
	var req dto.CompareDatesRequest

	err := dto.BindAndValidate(c, &req)
	if err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	cmp, err := h.service.Compare(c.Request.Context(), toDateInput(req.Left), toDateInput(req.Right))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompareDatesResponse{
		Left:        *toReportResponse(cmp.Left),
		Right:       *toReportResponse(cmp.Right),
		Equal:       cmp.Equal,
		Less:        cmp.Less,
		Greater:     cmp.Greater,
		LessOrEqual: cmp.LessOrEqual,
		Ordering:    cmp.Ordering,
	})
}

// LeapYear handles GET /api/v1/calendar/leap-years/:year
// Reports whether the given year is a leap year.
//
// @Summary Check whether a year is a leap year
// @Tags calendar
// @Produce json
// @Param year path int true "Year"
// @Success 200 {object} dto.LeapYearResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/calendar/leap-years/{year} [get]
func (h *DateHandler) LeapYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		dto.HandleError(c, domain.NewTypeError("year", c.Param("year")))
		return
	}

	c.JSON(http.StatusOK, dto.LeapYearResponse{
		Year: year,
		Leap: h.service.LeapYear(c.Request.Context(), year),
	})
}

// MonthDays handles GET /api/v1/calendar/months/:month/days
// Returns the number of days in the given month. The optional year query
// parameter (default 2001, a non-leap year) decides February's length.
//
// @Summary Get the number of days in a month
// @Tags calendar
// @Produce json
// @Param month path int true "Month (1-12)"
// @Param year query int false "Year deciding February's length"
// @Success 200 {object} dto.MonthDaysResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/calendar/months/{month}/days [get]
func (h *DateHandler) MonthDays(c *gin.Context) {
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		dto.HandleError(c, domain.NewTypeError("month", c.Param("month")))
		return
	}

	year := defaultMonthDaysYear

	if raw := c.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			dto.HandleError(c, domain.NewTypeError("year", raw))
			return
		}
	}

	days, err := h.service.MonthLength(c.Request.Context(), month, year)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MonthDaysResponse{
		Month: month,
		Year:  year,
		Days:  days,
	})
}

// defaultMonthDaysYear is used when the year query parameter is absent.
// A known non-leap year keeps February at 28 days by default.
const defaultMonthDaysYear = 2001

// RegisterDateRoutes registers date and calendar routes on the given router group.
func (h *DateHandler) RegisterDateRoutes(rg *gin.RouterGroup) {
	dates := rg.Group("/dates")
	dates.POST("/check", h.CheckDate)
	dates.POST("/check-batch", h.CheckBatch)
	dates.POST("/compare", h.CompareDates)

	calendar := rg.Group("/calendar")
	calendar.GET("/leap-years/:year", h.LeapYear)
	calendar.GET("/months/:month/days", h.MonthDays)
}
