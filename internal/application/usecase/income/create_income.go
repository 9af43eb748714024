// Package income contains income-related use cases.
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

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	UserID      uuid.UUID
	Description string
	Value       decimal.Decimal
	Date        time.Time
	AccountID   uuid.UUID
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	accountRepo adapter.AccountRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository, accountRepo adapter.AccountRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{incomeRepo: incomeRepo, accountRepo: accountRepo}
}

// Execute performs the income creation. The account balance is only credited
// when the income is marked as received.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeMissingIncomeFields,
			"income description is required",
			nil,
		)
	}

	if input.Value.IsNegative() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeNegativeIncomeValue,
			"income value must not be negative",
			domainerror.ErrNegativeIncomeValue,
		)
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil || account.UserID != input.UserID {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeAccountNotFound,
			"account not found",
			domainerror.ErrIncomeAccountNotFound,
		)
	}

	income := entity.NewIncome(input.UserID, input.Description, input.Value.Round(2), input.Date, input.AccountID)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return &CreateIncomeOutput{Income: income}, nil
}
