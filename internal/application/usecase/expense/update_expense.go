package expense

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

// UpdateExpenseInput represents the input for expense update. Nil fields are
// left unchanged. Changing the date or the recurrence reshapes the whole
// expanded series on the next read.
type UpdateExpenseInput struct {
	UserID      uuid.UUID
	ExpenseID   uuid.UUID
	Description *string
	Area        *string
	Category    *string
	Value       *decimal.Decimal
	Date        *time.Time
	Status      *entity.ExpenseStatus
	PaymentDate *time.Time
	CardID      *uuid.UUID
	AccountID   *uuid.UUID
	Recurrence  *entity.Recurrence
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cardRepo    adapter.CardRepository
	accountRepo adapter.AccountRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cardRepo adapter.CardRepository,
	accountRepo adapter.AccountRepository,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		cardRepo:    cardRepo,
		accountRepo: accountRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	exp, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if exp.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"not authorized to modify expense",
			domainerror.ErrNotAuthorizedToModifyExpense,
		)
	}

	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeMissingExpenseFields,
				"expense description is required",
				nil,
			)
		}
		if len(*input.Description) > maxDescriptionLength {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseDescriptionTooLong,
				fmt.Sprintf("description must not exceed %d characters", maxDescriptionLength),
				domainerror.ErrExpenseDescriptionTooLong,
			)
		}
		exp.Description = *input.Description
	}

	if input.Area != nil {
		exp.Area = *input.Area
	}
	if input.Category != nil {
		exp.Category = *input.Category
	}

	if input.Value != nil {
		if input.Value.IsNegative() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeNegativeExpenseValue,
				"expense value must not be negative",
				domainerror.ErrNegativeExpenseValue,
			)
		}
		exp.Value = input.Value.Round(2)
	}

	if input.Date != nil {
		exp.Date = *input.Date
	}

	if input.Status != nil {
		if !isValidExpenseStatus(*input.Status) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseStatus,
				"expense status must be 'paid' or 'scheduled'",
				domainerror.ErrInvalidExpenseStatus,
			)
		}
		exp.Status = *input.Status
	}

	if input.PaymentDate != nil {
		exp.PaymentDate = input.PaymentDate
	}

	if input.CardID != nil {
		card, err := uc.cardRepo.FindByID(ctx, *input.CardID)
		if err != nil || card.UserID != input.UserID {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpCardNotFound,
				"card not found",
				domainerror.ErrCardNotFoundForExpense,
			)
		}
		exp.CardID = input.CardID
	}

	if input.AccountID != nil {
		account, err := uc.accountRepo.FindByID(ctx, *input.AccountID)
		if err != nil || account.UserID != input.UserID {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFoundForExpense,
			)
		}
		exp.AccountID = input.AccountID
	}

	if input.Recurrence != nil {
		if err := validateRecurrence(*input.Recurrence, exp.Date); err != nil {
			return nil, err
		}
		exp.Recurrence = *input.Recurrence
	}

	exp.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: exp}, nil
}
