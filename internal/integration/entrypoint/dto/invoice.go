// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/home-ledger/backend/internal/domain/entity"
)

// PayInvoiceRequest represents the request body for invoice payment.
type PayInvoiceRequest struct {
	AccountID string  `json:"account_id" binding:"required"`
	PaidDate  *string `json:"paid_date,omitempty"`
}

// InvoiceResponse represents a single invoice in API responses.
type InvoiceResponse struct {
	CardID            string  `json:"card_id"`
	Month             int     `json:"month"`
	Year              int     `json:"year"`
	Status            string  `json:"status"`
	TotalAmount       string  `json:"total_amount"`
	ItemCount         int     `json:"item_count"`
	PaidDate          *string `json:"paid_date,omitempty"`
	PaidFromAccountID *string `json:"paid_from_account_id,omitempty"`
}

// InvoiceListResponse represents the response for listing invoices.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// InvoiceDetailResponse represents an invoice together with its billed items.
type InvoiceDetailResponse struct {
	Invoice InvoiceResponse           `json:"invoice"`
	Items   []ExpenseInstanceResponse `json:"items"`
}

// ToInvoiceResponse converts a domain Invoice entity to an InvoiceResponse DTO.
func ToInvoiceResponse(inv *entity.Invoice) InvoiceResponse {
	response := InvoiceResponse{
		CardID:      inv.CardID.String(),
		Month:       int(inv.Month),
		Year:        inv.Year,
		Status:      string(inv.Status),
		TotalAmount: inv.TotalAmount.String(),
		ItemCount:   inv.ItemCount,
	}

	if inv.PaidDate != nil {
		paidDate := inv.PaidDate.Format("2006-01-02")
		response.PaidDate = &paidDate
	}
	if inv.PaidFromAccountID != nil {
		accountID := inv.PaidFromAccountID.String()
		response.PaidFromAccountID = &accountID
	}

	return response
}

// ToInvoiceListResponse converts a slice of invoices to an InvoiceListResponse.
func ToInvoiceListResponse(invoices []*entity.Invoice) InvoiceListResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		responses[i] = ToInvoiceResponse(inv)
	}
	return InvoiceListResponse{Invoices: responses}
}

// ToInvoiceDetailResponse converts an invoice and its items to a detail DTO.
func ToInvoiceDetailResponse(inv *entity.Invoice, items []entity.ExpenseInstance) InvoiceDetailResponse {
	itemResponses := make([]ExpenseInstanceResponse, len(items))
	for i, item := range items {
		itemResponses[i] = ToExpenseInstanceResponse(item)
	}
	return InvoiceDetailResponse{
		Invoice: ToInvoiceResponse(inv),
		Items:   itemResponses,
	}
}
