// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Upsert creates the budget or, when one already exists for the same
	// (user, area, category, month, year), replaces its planned amount.
	Upsert(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUserAndMonth retrieves all budgets for the given month.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month time.Month, year int) ([]*entity.Budget, error)

	// Delete soft-deletes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
