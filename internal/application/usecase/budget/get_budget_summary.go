package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/billing"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// GetBudgetSummaryInput represents the input for the monthly budget summary.
type GetBudgetSummaryInput struct {
	UserID uuid.UUID
	Month  time.Month
	Year   int
}

// GetBudgetSummaryOutput represents the output of the monthly budget summary.
type GetBudgetSummaryOutput struct {
	Budgets []entity.BudgetWithActual
}

// GetBudgetSummaryUseCase computes each budget's actual spend for the month
// from the expanded expense instances dated inside it.
type GetBudgetSummaryUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetBudgetSummaryUseCase creates a new GetBudgetSummaryUseCase instance.
func NewGetBudgetSummaryUseCase(budgetRepo adapter.BudgetRepository, expenseRepo adapter.ExpenseRepository) *GetBudgetSummaryUseCase {
	return &GetBudgetSummaryUseCase{budgetRepo: budgetRepo, expenseRepo: expenseRepo}
}

// Execute computes the budget summary for the month.
func (uc *GetBudgetSummaryUseCase) Execute(ctx context.Context, input GetBudgetSummaryInput) (*GetBudgetSummaryOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"budget month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	budgets, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	instances := billing.ExpandAll(expenses)

	out := make([]entity.BudgetWithActual, 0, len(budgets))
	for _, b := range budgets {
		actual := decimal.Zero
		for _, inst := range instances {
			if inst.Date.Month() != input.Month || inst.Date.Year() != input.Year {
				continue
			}
			if inst.Area != b.Area {
				continue
			}
			if b.Category != "" && inst.Category != b.Category {
				continue
			}
			actual = actual.Add(inst.Value)
		}
		out = append(out, entity.BudgetWithActual{
			Budget:    b,
			Actual:    actual,
			Remaining: b.Planned.Sub(actual),
		})
	}

	return &GetBudgetSummaryOutput{Budgets: out}, nil
}
