// Package expense contains expense-related use cases.
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

const maxDescriptionLength = 255

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Description string
	Area        string
	Category    string
	Value       decimal.Decimal
	Date        time.Time
	Status      entity.ExpenseStatus
	PaymentDate *time.Time
	CardID      *uuid.UUID
	AccountID   *uuid.UUID
	Recurrence  entity.Recurrence
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic. Only the original
// record is stored; recurring expenses are expanded on read.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cardRepo    adapter.CardRepository
	accountRepo adapter.AccountRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cardRepo adapter.CardRepository,
	accountRepo adapter.AccountRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		cardRepo:    cardRepo,
		accountRepo: accountRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"expense description is required",
			nil,
		)
	}
	if len(input.Description) > maxDescriptionLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", maxDescriptionLength),
			domainerror.ErrExpenseDescriptionTooLong,
		)
	}
	if input.Value.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNegativeExpenseValue,
			"expense value must not be negative",
			domainerror.ErrNegativeExpenseValue,
		)
	}
	if !isValidExpenseStatus(input.Status) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseStatus,
			"expense status must be 'paid' or 'scheduled'",
			domainerror.ErrInvalidExpenseStatus,
		)
	}
	if err := validateRecurrence(input.Recurrence, input.Date); err != nil {
		return nil, err
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
	}

	exp := entity.NewExpense(
		input.UserID,
		input.Description,
		input.Area,
		input.Category,
		input.Value.Round(2),
		input.Date,
		input.Status,
		input.CardID,
		input.AccountID,
		input.Recurrence,
	)
	exp.PaymentDate = input.PaymentDate

	if err := uc.expenseRepo.Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: exp}, nil
}

func isValidExpenseStatus(s entity.ExpenseStatus) bool {
	return s == entity.ExpenseStatusPaid || s == entity.ExpenseStatusScheduled
}

// validateRecurrence rejects descriptors that could never expand into a
// well-formed series. Records that predate validation still fall back to a
// single instance at expansion time.
func validateRecurrence(r entity.Recurrence, date time.Time) error {
	switch r.Type {
	case entity.RecurrenceNone:
		return nil

	case entity.RecurrenceDateRange:
		if r.EndDate == nil || r.EndDate.Before(date) {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidRecurrence,
				"recurrence end date must not precede the expense date",
				domainerror.ErrInvalidRecurrence,
			)
		}
		return nil

	case entity.RecurrenceInstallments:
		if r.Installments == nil ||
			*r.Installments < entity.MinInstallments ||
			*r.Installments > entity.MaxInstallments {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeInstallmentsOutOfRange,
				fmt.Sprintf("installment count must be between %d and %d",
					entity.MinInstallments, entity.MaxInstallments),
				domainerror.ErrInstallmentsOutOfRange,
			)
		}
		return nil

	case entity.RecurrenceFrequency:
		switch r.Unit {
		case entity.FrequencyWeekly, entity.FrequencyMonthly, entity.FrequencyYearly:
			return nil
		}
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidRecurrence,
			"recurrence unit must be 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidRecurrence,
		)

	default:
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidRecurrence,
			"unknown recurrence type",
			domainerror.ErrInvalidRecurrence,
		)
	}
}
