// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Value       float64 `json:"value" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	AccountID   string  `json:"account_id" binding:"required"`
}

// UpdateIncomeRequest represents the request body for income update.
type UpdateIncomeRequest struct {
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Value       *float64 `json:"value,omitempty"`
	Date        *string  `json:"date,omitempty"`
	AccountID   *string  `json:"account_id,omitempty"`
}

// MarkIncomeReceivedRequest represents the request body for marking an income
// as received.
type MarkIncomeReceivedRequest struct {
	ReceivedDate *string `json:"received_date,omitempty"`
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID           string    `json:"id"`
	Description  string    `json:"description"`
	Value        string    `json:"value"`
	Date         string    `json:"date"`
	AccountID    string    `json:"account_id"`
	Received     bool      `json:"received"`
	ReceivedDate *string   `json:"received_date,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	response := IncomeResponse{
		ID:          income.ID.String(),
		Description: income.Description,
		Value:       income.Value.String(),
		Date:        income.Date.Format("2006-01-02"),
		AccountID:   income.AccountID.String(),
		Received:    income.Received,
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}

	if income.ReceivedDate != nil {
		receivedDate := income.ReceivedDate.Format("2006-01-02")
		response.ReceivedDate = &receivedDate
	}

	return response
}

// ToIncomeListResponse converts a slice of incomes to an IncomeListResponse.
func ToIncomeListResponse(incomes []*entity.Income) IncomeListResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i, income := range incomes {
		responses[i] = ToIncomeResponse(income)
	}
	return IncomeListResponse{Incomes: responses}
}
