// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// RecurrenceRequest represents the recurrence settings in expense requests.
// Type selects the variant; only the matching fields are read.
type RecurrenceRequest struct {
	Type          string  `json:"type" binding:"required,oneof=none date_range installments frequency"`
	EndDate       *string `json:"end_date,omitempty"`
	Installments  *int    `json:"installments,omitempty"`
	FrequencyUnit *string `json:"frequency_unit,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
}

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Description string             `json:"description" binding:"required,min=1,max=255"`
	Area        string             `json:"area" binding:"required,min=1,max=100"`
	Category    string             `json:"category,omitempty" binding:"omitempty,max=100"`
	Value       float64            `json:"value" binding:"required"`
	Date        string             `json:"date" binding:"required"`
	Status      string             `json:"status" binding:"required,oneof=paid scheduled"`
	PaymentDate *string            `json:"payment_date,omitempty"`
	CardID      *string            `json:"card_id,omitempty"`
	AccountID   *string            `json:"account_id,omitempty"`
	Recurrence  *RecurrenceRequest `json:"recurrence,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Description *string            `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Area        *string            `json:"area,omitempty" binding:"omitempty,min=1,max=100"`
	Category    *string            `json:"category,omitempty" binding:"omitempty,max=100"`
	Value       *float64           `json:"value,omitempty"`
	Date        *string            `json:"date,omitempty"`
	Status      *string            `json:"status,omitempty" binding:"omitempty,oneof=paid scheduled"`
	PaymentDate *string            `json:"payment_date,omitempty"`
	CardID      *string            `json:"card_id,omitempty"`
	AccountID   *string            `json:"account_id,omitempty"`
	Recurrence  *RecurrenceRequest `json:"recurrence,omitempty"`
}

// RecurrenceResponse represents the recurrence settings in expense responses.
type RecurrenceResponse struct {
	Type          string  `json:"type"`
	EndDate       *string `json:"end_date,omitempty"`
	Installments  *int    `json:"installments,omitempty"`
	FrequencyUnit string  `json:"frequency_unit,omitempty"`
}

// ExpenseResponse represents a stored expense in API responses.
type ExpenseResponse struct {
	ID          string             `json:"id"`
	Description string             `json:"description"`
	Area        string             `json:"area"`
	Category    string             `json:"category,omitempty"`
	Value       string             `json:"value"`
	Date        string             `json:"date"`
	Status      string             `json:"status"`
	PaymentDate *string            `json:"payment_date,omitempty"`
	CardID      *string            `json:"card_id,omitempty"`
	AccountID   *string            `json:"account_id,omitempty"`
	Recurrence  RecurrenceResponse `json:"recurrence"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ExpenseInstanceResponse represents a dated expense instance in API
// responses. Generated instances carry the parent id and their position in
// the series.
type ExpenseInstanceResponse struct {
	ID                string  `json:"id"`
	ParentID          *string `json:"parent_id,omitempty"`
	Description       string  `json:"description"`
	Area              string  `json:"area"`
	Category          string  `json:"category,omitempty"`
	Value             string  `json:"value"`
	Date              string  `json:"date"`
	Status            string  `json:"status"`
	PaymentDate       *string `json:"payment_date,omitempty"`
	CardID            *string `json:"card_id,omitempty"`
	AccountID         *string `json:"account_id,omitempty"`
	InstallmentNumber *int    `json:"installment_number,omitempty"`
	TotalInstallments *int    `json:"total_installments,omitempty"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseInstanceResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	response := ExpenseResponse{
		ID:          e.ID.String(),
		Description: e.Description,
		Area:        e.Area,
		Category:    e.Category,
		Value:       e.Value.String(),
		Date:        e.Date.Format("2006-01-02"),
		Status:      string(e.Status),
		Recurrence:  toRecurrenceResponse(e.Recurrence),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	if e.PaymentDate != nil {
		paymentDate := e.PaymentDate.Format("2006-01-02")
		response.PaymentDate = &paymentDate
	}
	if e.CardID != nil {
		cardID := e.CardID.String()
		response.CardID = &cardID
	}
	if e.AccountID != nil {
		accountID := e.AccountID.String()
		response.AccountID = &accountID
	}

	return response
}

// ToExpenseInstanceResponse converts an ExpenseInstance to its DTO.
func ToExpenseInstanceResponse(inst entity.ExpenseInstance) ExpenseInstanceResponse {
	response := ExpenseInstanceResponse{
		ID:                inst.ID,
		Description:       inst.Description,
		Area:              inst.Area,
		Category:          inst.Category,
		Value:             inst.Value.String(),
		Date:              inst.Date.Format("2006-01-02"),
		Status:            string(inst.Status),
		InstallmentNumber: inst.InstallmentNumber,
		TotalInstallments: inst.TotalInstallments,
	}

	if inst.ParentID != nil {
		parentID := inst.ParentID.String()
		response.ParentID = &parentID
	}
	if inst.PaymentDate != nil {
		paymentDate := inst.PaymentDate.Format("2006-01-02")
		response.PaymentDate = &paymentDate
	}
	if inst.CardID != nil {
		cardID := inst.CardID.String()
		response.CardID = &cardID
	}
	if inst.AccountID != nil {
		accountID := inst.AccountID.String()
		response.AccountID = &accountID
	}

	return response
}

// ToExpenseListResponse converts expense instances to an ExpenseListResponse.
func ToExpenseListResponse(instances []entity.ExpenseInstance) ExpenseListResponse {
	expenses := make([]ExpenseInstanceResponse, len(instances))
	for i, inst := range instances {
		expenses[i] = ToExpenseInstanceResponse(inst)
	}
	return ExpenseListResponse{Expenses: expenses}
}

func toRecurrenceResponse(r entity.Recurrence) RecurrenceResponse {
	response := RecurrenceResponse{
		Type:          string(r.Type),
		Installments:  r.Installments,
		FrequencyUnit: string(r.Unit),
	}
	if r.EndDate != nil {
		endDate := r.EndDate.Format("2006-01-02")
		response.EndDate = &endDate
	}
	return response
}
