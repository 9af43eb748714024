// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// InvoiceOverrideRepository defines the interface for invoice payment
// overrides, the only persisted invoice state. Invoice totals and statuses
// are always derived from expenses; overrides carry payment facts only.
type InvoiceOverrideRepository interface {
	// CreateWithSettlement records the payment override and decrements the
	// settlement account's balance by the paid amount in a single database
	// transaction.
	CreateWithSettlement(ctx context.Context, override *entity.InvoiceOverride) error

	// FindByUser retrieves all overrides recorded by the user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InvoiceOverride, error)

	// FindByCard retrieves all overrides for a card.
	FindByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.InvoiceOverride, error)

	// FindByKey retrieves the override for (card, month, year), or nil when
	// the invoice has not been paid.
	FindByKey(ctx context.Context, cardID uuid.UUID, month time.Month, year int) (*entity.InvoiceOverride, error)
}
