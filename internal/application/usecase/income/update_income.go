package income

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

// UpdateIncomeInput represents the input for income update. Nil fields are
// left unchanged.
type UpdateIncomeInput struct {
	UserID      uuid.UUID
	IncomeID    uuid.UUID
	Description *string
	Value       *decimal.Decimal
	Date        *time.Time
	AccountID   *uuid.UUID
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *entity.Income
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	accountRepo adapter.AccountRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository, accountRepo adapter.AccountRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{incomeRepo: incomeRepo, accountRepo: accountRepo}
}

// Execute performs the income update.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
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

	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeMissingIncomeFields,
				"income description is required",
				nil,
			)
		}
		income.Description = *input.Description
	}

	if input.Value != nil {
		if input.Value.IsNegative() {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeNegativeIncomeValue,
				"income value must not be negative",
				domainerror.ErrNegativeIncomeValue,
			)
		}
		income.Value = input.Value.Round(2)
	}

	if input.Date != nil {
		income.Date = *input.Date
	}

	if input.AccountID != nil {
		account, err := uc.accountRepo.FindByID(ctx, *input.AccountID)
		if err != nil || account.UserID != input.UserID {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeAccountNotFound,
				"account not found",
				domainerror.ErrIncomeAccountNotFound,
			)
		}
		income.AccountID = *input.AccountID
	}

	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	return &UpdateIncomeOutput{Income: income}, nil
}
