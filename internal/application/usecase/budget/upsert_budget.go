// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// UpsertBudgetInput represents the input for setting a monthly budget. An
// empty Category budgets the whole area.
type UpsertBudgetInput struct {
	UserID   uuid.UUID
	Area     string
	Category string
	Month    time.Month
	Year     int
	Planned  decimal.Decimal
}

// UpsertBudgetOutput represents the output of setting a monthly budget.
type UpsertBudgetOutput struct {
	Budget *entity.Budget
}

// UpsertBudgetUseCase creates or replaces the budget for a
// (user, area, category, month, year) slot.
type UpsertBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute sets the budget.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	if strings.TrimSpace(input.Area) == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAreaRequired,
			"budget area is required",
			domainerror.ErrBudgetAreaRequired,
		)
	}
	if input.Month < time.January || input.Month > time.December {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"budget month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	if input.Planned.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudgetAmount,
			"planned amount must not be negative",
			domainerror.ErrNegativeBudgetAmount,
		)
	}

	budget := entity.NewBudget(input.UserID, input.Area, input.Category, input.Month, input.Year, input.Planned.Round(2))

	if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	return &UpsertBudgetOutput{Budget: budget}, nil
}
