// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/home-ledger/backend/internal/application/usecase/report"
	"github.com/home-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/home-ledger/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	monthlySummaryUseCase    *report.GetMonthlySummaryUseCase
	categoryBreakdownUseCase *report.GetCategoryBreakdownUseCase
	calendarUseCase          *report.GetCalendarUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	monthlySummaryUseCase *report.GetMonthlySummaryUseCase,
	categoryBreakdownUseCase *report.GetCategoryBreakdownUseCase,
	calendarUseCase *report.GetCalendarUseCase,
) *ReportController {
	return &ReportController{
		monthlySummaryUseCase:    monthlySummaryUseCase,
		categoryBreakdownUseCase: categoryBreakdownUseCase,
		calendarUseCase:          calendarUseCase,
	}
}

// MonthlySummary handles GET /reports/monthly-summary requests. The optional
// startDate and endDate query parameters bound the range; when omitted the
// use case defaults to the last six months.
func (c *ReportController) MonthlySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var startDate, endDate time.Time
	if s := ctx.Query("startDate"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid startDate format, expected YYYY-MM-DD",
			})
			return
		}
		startDate = parsed
	}
	if s := ctx.Query("endDate"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid endDate format, expected YYYY-MM-DD",
			})
			return
		}
		endDate = parsed
	}

	input := report.GetMonthlySummaryInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.monthlySummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		slog.Error("failed to build monthly summary", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// CategoryBreakdown handles GET /reports/category-breakdown requests.
func (c *ReportController) CategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	month, year, ok := parseMonthYearQuery(ctx)
	if !ok {
		return
	}

	input := report.GetCategoryBreakdownInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	}

	output, err := c.categoryBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		slog.Error("failed to build category breakdown", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Calendar handles GET /reports/calendar requests.
func (c *ReportController) Calendar(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	month, year, ok := parseMonthYearQuery(ctx)
	if !ok {
		return
	}

	input := report.GetCalendarInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	}

	output, err := c.calendarUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		slog.Error("failed to build calendar", "error", err, "user_id", userID)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, output)
}
