package expense

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/billing"
	"github.com/home-ledger/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses. Date bounds
// are inclusive and applied to the expanded instances, so a recurring expense
// stored outside the window still contributes the instances that fall inside
// it.
type ListExpensesInput struct {
	UserID   uuid.UUID
	Area     string
	Category string
	CardID   *uuid.UUID
	Status   *entity.ExpenseStatus
	From     *time.Time
	To       *time.Time
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Instances []entity.ExpenseInstance
}

// ListExpensesUseCase loads stored expenses, expands recurrences and filters
// the resulting instances.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute lists the expanded expense instances matching the filter, ordered
// by date ascending.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID: input.UserID,
		Area:   input.Area,
		CardID: input.CardID,
		Status: input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	instances := billing.ExpandAll(expenses)

	filtered := make([]entity.ExpenseInstance, 0, len(instances))
	for _, inst := range instances {
		if input.Category != "" && inst.Category != input.Category {
			continue
		}
		if input.From != nil && inst.Date.Before(*input.From) {
			continue
		}
		if input.To != nil && inst.Date.After(*input.To) {
			continue
		}
		filtered = append(filtered, inst)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	return &ListExpensesOutput{Instances: filtered}, nil
}
