// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardType represents the network type of a card (debit or credit).
type CardType string

const (
	CardTypeDebit  CardType = "debit"
	CardTypeCredit CardType = "credit"
)

// Card represents a payment card. Credit cards carry a limit and a monthly
// billing cycle defined by the closing day; debit cards settle directly
// against their account.
type Card struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Type        CardType
	AccountID   uuid.UUID       // Account the card settles against
	CreditLimit decimal.Decimal // Meaningful for credit cards only
	DueDay      int             // 1-31
	ClosingDay  int             // 1-31; spend after this day rolls to the next cycle
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewCard creates a new Card entity.
func NewCard(
	userID uuid.UUID,
	name string,
	cardType CardType,
	accountID uuid.UUID,
	creditLimit decimal.Decimal,
	dueDay int,
	closingDay int,
) *Card {
	now := time.Now().UTC()

	return &Card{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Type:        cardType,
		AccountID:   accountID,
		CreditLimit: creditLimit,
		DueDay:      dueDay,
		ClosingDay:  closingDay,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
