// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a planned monthly spending cap for an area, optionally
// narrowed to a single category within it.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Area      string
	Category  string // Empty means the budget covers the whole area
	Month     time.Month
	Year      int
	Planned   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, area, category string, month time.Month, year int, planned decimal.Decimal) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Area:      area,
		Category:  category,
		Month:     month,
		Year:      year,
		Planned:   planned,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BudgetWithActual pairs a budget with the actual amount spent against it.
type BudgetWithActual struct {
	Budget    *Budget
	Actual    decimal.Decimal
	Remaining decimal.Decimal // Planned - Actual; negative when overspent
}
