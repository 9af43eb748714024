// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/application/usecase/budget"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
	"github.com/home-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/home-ledger/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	upsertUseCase  *budget.UpsertBudgetUseCase
	summaryUseCase *budget.GetBudgetSummaryUseCase
	deleteUseCase  *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	upsertUseCase *budget.UpsertBudgetUseCase,
	summaryUseCase *budget.GetBudgetSummaryUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		upsertUseCase:  upsertUseCase,
		summaryUseCase: summaryUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// Upsert handles PUT /budgets requests. Setting a budget for a slot that
// already has one replaces the planned amount.
func (c *BudgetController) Upsert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpsertBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := budget.UpsertBudgetInput{
		UserID:   userID,
		Area:     req.Area,
		Category: req.Category,
		Month:    time.Month(req.Month),
		Year:     req.Year,
		Planned:  decimal.NewFromFloat(req.Planned),
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Summary handles GET /budgets requests.
func (c *BudgetController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	month, year, ok := parseMonthYearQuery(ctx)
	if !ok {
		return
	}

	input := budget.GetBudgetSummaryInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(output.Budgets))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	input := budget.DeleteBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseMonthYearQuery parses required month and year query parameters. It
// writes the error response itself and reports success via the bool.
func parseMonthYearQuery(ctx *gin.Context) (time.Month, int, bool) {
	monthInt, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || monthInt < 1 || monthInt > 12 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month; must be 1-12",
		})
		return 0, 0, false
	}

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year",
		})
		return 0, 0, false
	}

	return time.Month(monthInt), year, true
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedBudget:
		return http.StatusForbidden
	case domainerror.ErrCodeNegativeBudgetAmount,
		domainerror.ErrCodeBudgetAreaRequired,
		domainerror.ErrCodeInvalidBudgetMonth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
