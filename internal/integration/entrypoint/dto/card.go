// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/home-ledger/backend/internal/application/usecase/card"
	"github.com/home-ledger/backend/internal/domain/entity"
)

// CreateCardRequest represents the request body for card creation.
type CreateCardRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Type        string  `json:"type" binding:"required,oneof=debit credit"`
	AccountID   string  `json:"account_id" binding:"required"`
	CreditLimit float64 `json:"credit_limit"`
	DueDay      int     `json:"due_day" binding:"required,min=1,max=31"`
	ClosingDay  int     `json:"closing_day" binding:"required,min=1,max=31"`
}

// UpdateCardRequest represents the request body for card update.
type UpdateCardRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=debit credit"`
	AccountID   *string  `json:"account_id,omitempty"`
	CreditLimit *float64 `json:"credit_limit,omitempty"`
	DueDay      *int     `json:"due_day,omitempty" binding:"omitempty,min=1,max=31"`
	ClosingDay  *int     `json:"closing_day,omitempty" binding:"omitempty,min=1,max=31"`
}

// CardResponse represents a single card in API responses.
type CardResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	AccountID   string    `json:"account_id"`
	CreditLimit string    `json:"credit_limit"`
	DueDay      int       `json:"due_day"`
	ClosingDay  int       `json:"closing_day"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// Derived limit figures, present on list responses
	UsedLimit      string `json:"used_limit,omitempty"`
	AvailableLimit string `json:"available_limit,omitempty"`
}

// CardListResponse represents the response for listing cards.
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

// ToCardResponse converts a domain Card entity to a CardResponse DTO.
func ToCardResponse(c *entity.Card) CardResponse {
	return CardResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Type:        string(c.Type),
		AccountID:   c.AccountID.String(),
		CreditLimit: c.CreditLimit.String(),
		DueDay:      c.DueDay,
		ClosingDay:  c.ClosingDay,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCardListResponse converts a ListCardsOutput to a CardListResponse.
func ToCardListResponse(output *card.ListCardsOutput) CardListResponse {
	cards := make([]CardResponse, len(output.Cards))
	for i, cwl := range output.Cards {
		response := ToCardResponse(cwl.Card)
		response.UsedLimit = cwl.UsedLimit.String()
		response.AvailableLimit = cwl.AvailableLimit.String()
		cards[i] = response
	}
	return CardListResponse{Cards: cards}
}
