package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Deleted bool
}

// DeleteAccountUseCase handles account deletion logic. An account that is
// still referenced by cards, expenses or incomes cannot be deleted.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
	cardRepo    adapter.CardRepository
	expenseRepo adapter.ExpenseRepository
	incomeRepo  adapter.IncomeRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	accountRepo adapter.AccountRepository,
	cardRepo adapter.CardRepository,
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if account.UserID != input.UserID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeNotAuthorizedAccount,
			"not authorized to modify account",
			domainerror.ErrNotAuthorizedToModifyAccount,
		)
	}

	inUse, err := uc.accountInUse(ctx, input.UserID, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check account references: %w", err)
	}
	if inUse {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountInUse,
			"account is still referenced by cards or records",
			domainerror.ErrAccountInUse,
		)
	}

	if err := uc.accountRepo.Delete(ctx, input.AccountID); err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	return &DeleteAccountOutput{Deleted: true}, nil
}

func (uc *DeleteAccountUseCase) accountInUse(ctx context.Context, userID, accountID uuid.UUID) (bool, error) {
	cards, err := uc.cardRepo.FindByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, card := range cards {
		if card.AccountID == accountID {
			return true, nil
		}
	}

	if used, err := uc.expenseRepo.ExistsByAccount(ctx, accountID); err != nil {
		return false, err
	} else if used {
		return true, nil
	}

	return uc.incomeRepo.ExistsByAccount(ctx, accountID)
}
