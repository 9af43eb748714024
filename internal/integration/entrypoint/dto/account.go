// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	Type           string  `json:"type" binding:"required,oneof=checking savings wallet"`
	InitialBalance float64 `json:"initial_balance"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name    *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type    *string  `json:"type,omitempty" binding:"omitempty,oneof=checking savings wallet"`
	Balance *float64 `json:"balance,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Type:      string(account.Type),
		Balance:   account.Balance.String(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// ToAccountListResponse converts a slice of accounts to an AccountListResponse.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = ToAccountResponse(account)
	}
	return AccountListResponse{Accounts: responses}
}
