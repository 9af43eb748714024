// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle status of a credit card invoice.
type InvoiceStatus string

const (
	InvoiceStatusOpen   InvoiceStatus = "open"
	InvoiceStatusClosed InvoiceStatus = "closed"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// InvoiceKey identifies an invoice by card and billing month.
type InvoiceKey struct {
	CardID uuid.UUID
	Month  time.Month
	Year   int
}

// Invoice is a derived view of a card's billing month: the sum of every
// expense instance whose billing month matches, plus the payment facts from
// an override when the invoice has been paid. It is recomputed on every read
// and never persisted; only overrides are authoritative.
type Invoice struct {
	CardID            uuid.UUID
	Month             time.Month
	Year              int
	Status            InvoiceStatus
	TotalAmount       decimal.Decimal
	ItemCount         int
	PaidDate          *time.Time
	PaidFromAccountID *uuid.UUID
}

// Key returns the identifying key of the invoice.
func (i *Invoice) Key() InvoiceKey {
	return InvoiceKey{CardID: i.CardID, Month: i.Month, Year: i.Year}
}

// InvoiceOverride is the persisted record of an invoice's payment fact.
// It is merged over the computed invoice by (card, month, year) and only
// contributes the paid status and payment fields; the total is always
// recomputed from expenses.
type InvoiceOverride struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	CardID            uuid.UUID
	Month             time.Month
	Year              int
	PaidDate          time.Time
	PaidFromAccountID uuid.UUID
	AmountAtPayment   decimal.Decimal // Informational snapshot, never displayed as the total
	CreatedAt         time.Time
}

// NewInvoiceOverride creates a new InvoiceOverride entity.
func NewInvoiceOverride(
	userID uuid.UUID,
	cardID uuid.UUID,
	month time.Month,
	year int,
	paidDate time.Time,
	paidFromAccountID uuid.UUID,
	amountAtPayment decimal.Decimal,
) *InvoiceOverride {
	return &InvoiceOverride{
		ID:                uuid.New(),
		UserID:            userID,
		CardID:            cardID,
		Month:             month,
		Year:              year,
		PaidDate:          paidDate,
		PaidFromAccountID: paidFromAccountID,
		AmountAtPayment:   amountAtPayment,
		CreatedAt:         time.Now().UTC(),
	}
}

// Key returns the invoice key the override applies to.
func (o *InvoiceOverride) Key() InvoiceKey {
	return InvoiceKey{CardID: o.CardID, Month: o.Month, Year: o.Year}
}
