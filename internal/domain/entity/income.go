// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income represents an income record credited to an account.
type Income struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Description  string
	Value        decimal.Decimal
	Date         time.Time
	AccountID    uuid.UUID
	Received     bool
	ReceivedDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewIncome creates a new Income entity.
func NewIncome(userID uuid.UUID, description string, value decimal.Decimal, date time.Time, accountID uuid.UUID) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Value:       value,
		Date:        date,
		AccountID:   accountID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
