package income

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
)

// ListIncomesInput represents the input for listing incomes. When From and To
// are both set only incomes in the inclusive range are returned.
type ListIncomesInput struct {
	UserID uuid.UUID
	From   *time.Time
	To     *time.Time
}

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Incomes []*entity.Income
}

// ListIncomesUseCase handles the income listing logic.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{incomeRepo: incomeRepo}
}

// Execute lists the user's incomes.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	var (
		incomes []*entity.Income
		err     error
	)

	if input.From != nil && input.To != nil {
		incomes, err = uc.incomeRepo.FindByUserAndRange(ctx, input.UserID, *input.From, *input.To)
	} else {
		incomes, err = uc.incomeRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	return &ListIncomesOutput{Incomes: incomes}, nil
}
