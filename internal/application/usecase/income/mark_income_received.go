package income

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// MarkIncomeReceivedInput represents the input for marking an income as
// received. ReceivedDate defaults to now when nil.
type MarkIncomeReceivedInput struct {
	UserID       uuid.UUID
	IncomeID     uuid.UUID
	ReceivedDate *time.Time
}

// MarkIncomeReceivedOutput represents the output of marking an income as
// received.
type MarkIncomeReceivedOutput struct {
	Income *entity.Income
}

// MarkIncomeReceivedUseCase marks an income as received and credits the
// target account's balance.
type MarkIncomeReceivedUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewMarkIncomeReceivedUseCase creates a new MarkIncomeReceivedUseCase instance.
func NewMarkIncomeReceivedUseCase(incomeRepo adapter.IncomeRepository) *MarkIncomeReceivedUseCase {
	return &MarkIncomeReceivedUseCase{incomeRepo: incomeRepo}
}

// Execute marks the income as received.
func (uc *MarkIncomeReceivedUseCase) Execute(ctx context.Context, input MarkIncomeReceivedInput) (*MarkIncomeReceivedOutput, error) {
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

	if income.Received {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeAlreadyReceived,
			"income already marked as received",
			domainerror.ErrIncomeAlreadyReceived,
		)
	}

	receivedAt := time.Now().UTC()
	if input.ReceivedDate != nil {
		receivedAt = *input.ReceivedDate
	}

	income.Received = true
	income.ReceivedDate = &receivedAt
	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.UpdateWithCredit(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to record received income: %w", err)
	}

	return &MarkIncomeReceivedOutput{Income: income}, nil
}
