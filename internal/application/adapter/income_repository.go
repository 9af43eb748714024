// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create creates a new income in the database.
	Create(ctx context.Context, income *entity.Income) error

	// FindByID retrieves an income by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// FindByUser retrieves all incomes for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Income, error)

	// FindByUserAndRange retrieves incomes dated within [start, end].
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Income, error)

	// Update updates an existing income in the database.
	Update(ctx context.Context, income *entity.Income) error

	// UpdateWithCredit persists the income and credits its account's balance
	// by the income value in a single database transaction.
	UpdateWithCredit(ctx context.Context, income *entity.Income) error

	// Delete soft-deletes an income from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByAccount checks whether any income credits the account.
	ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error)
}
