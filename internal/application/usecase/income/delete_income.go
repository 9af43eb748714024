package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	UserID   uuid.UUID
	IncomeID uuid.UUID
}

// DeleteIncomeOutput represents the output of income deletion.
type DeleteIncomeOutput struct {
	Deleted bool
}

// DeleteIncomeUseCase handles income deletion logic. Deleting a received
// income reverses the balance credit.
type DeleteIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	accountRepo adapter.AccountRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository, accountRepo adapter.AccountRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{incomeRepo: incomeRepo, accountRepo: accountRepo}
}

// Execute performs the income deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeNotFound,
			"income not found",
			domainerror.ErrIncomeNotFound,
		)
	}

	if income.UserID != input.UserID {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeNotAuthorizedIncome,
			"not authorized to modify income",
			domainerror.ErrNotAuthorizedToModifyIncome,
		)
	}

	if err := uc.incomeRepo.Delete(ctx, input.IncomeID); err != nil {
		return nil, fmt.Errorf("failed to delete income: %w", err)
	}

	if income.Received {
		if err := uc.accountRepo.AdjustBalance(ctx, income.AccountID, income.Value.Neg()); err != nil {
			return nil, fmt.Errorf("failed to reverse account balance: %w", err)
		}
	}

	return &DeleteIncomeOutput{Deleted: true}, nil
}
