// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses. Filters apply to
// the stored records; recurrence expansion happens after loading, so a
// recurring expense whose series crosses the filtered window must still be
// loaded, so the date bounds are applied post-expansion by the use case,
// not here.
type ExpenseFilter struct {
	UserID uuid.UUID
	Area   string
	CardID *uuid.UUID
	Status *entity.ExpenseStatus
}

// ExpenseRepository defines the interface for expense persistence operations.
// Only stored originals are persisted; expanded instances never reach this
// layer.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByUser retrieves all stored expenses for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// FindByFilter retrieves stored expenses matching the filter.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// FindByCard retrieves all stored expenses charged to the card.
	FindByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete soft-deletes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByAccount checks whether any expense settles against the account.
	ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error)
}

// ReportRepository provides read models for report use cases.
type ReportRepository interface {
	// DataRange returns the earliest and latest stored expense dates for a
	// user, or nil when the user has no expenses.
	DataRange(ctx context.Context, userID uuid.UUID) (earliest, latest *time.Time, err error)
}
