// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// CardRepository defines the interface for card persistence operations.
type CardRepository interface {
	// Create creates a new card in the database.
	Create(ctx context.Context, card *entity.Card) error

	// FindByID retrieves a card by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error)

	// FindByUser retrieves all cards for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error)

	// Update updates an existing card in the database.
	Update(ctx context.Context, card *entity.Card) error

	// Delete soft-deletes a card from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountExpenses counts non-deleted expenses referencing the card.
	CountExpenses(ctx context.Context, id uuid.UUID) (int64, error)
}
