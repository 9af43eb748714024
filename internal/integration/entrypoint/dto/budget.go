// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/home-ledger/backend/internal/domain/entity"
)

// UpsertBudgetRequest represents the request body for setting a monthly budget.
type UpsertBudgetRequest struct {
	Area     string  `json:"area" binding:"required,min=1,max=100"`
	Category string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Month    int     `json:"month" binding:"required,min=1,max=12"`
	Year     int     `json:"year" binding:"required,min=1970"`
	Planned  float64 `json:"planned" binding:"required"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID       string `json:"id"`
	Area     string `json:"area"`
	Category string `json:"category,omitempty"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
	Planned  string `json:"planned"`
}

// BudgetWithActualResponse pairs a budget with its actual spend.
type BudgetWithActualResponse struct {
	BudgetResponse
	Actual    string `json:"actual"`
	Remaining string `json:"remaining"`
}

// BudgetSummaryResponse represents the response for the monthly budget summary.
type BudgetSummaryResponse struct {
	Budgets []BudgetWithActualResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:       b.ID.String(),
		Area:     b.Area,
		Category: b.Category,
		Month:    int(b.Month),
		Year:     b.Year,
		Planned:  b.Planned.String(),
	}
}

// ToBudgetSummaryResponse converts budgets with actuals to a summary DTO.
func ToBudgetSummaryResponse(budgets []entity.BudgetWithActual) BudgetSummaryResponse {
	responses := make([]BudgetWithActualResponse, len(budgets))
	for i, bwa := range budgets {
		responses[i] = BudgetWithActualResponse{
			BudgetResponse: ToBudgetResponse(bwa.Budget),
			Actual:         bwa.Actual.String(),
			Remaining:      bwa.Remaining.String(),
		}
	}
	return BudgetSummaryResponse{Budgets: responses}
}
