package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/billing"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// PayInvoiceInput represents the input for invoice payment. PaidDate defaults
// to now when nil.
type PayInvoiceInput struct {
	UserID            uuid.UUID
	CardID            uuid.UUID
	Month             time.Month
	Year              int
	PaidFromAccountID uuid.UUID
	PaidDate          *time.Time
}

// PayInvoiceOutput represents the output of invoice payment.
type PayInvoiceOutput struct {
	Invoice *entity.Invoice
}

// PayInvoiceUseCase records an invoice payment. Payment is the only invoice
// write: it persists an override carrying the payment facts and debits the
// settlement account in the same transaction. The invoice total remains
// derived, so later expense edits still flow through to a paid invoice.
type PayInvoiceUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	cardRepo     adapter.CardRepository
	accountRepo  adapter.AccountRepository
	overrideRepo adapter.InvoiceOverrideRepository
	now          func() time.Time
}

// NewPayInvoiceUseCase creates a new PayInvoiceUseCase instance.
func NewPayInvoiceUseCase(
	expenseRepo adapter.ExpenseRepository,
	cardRepo adapter.CardRepository,
	accountRepo adapter.AccountRepository,
	overrideRepo adapter.InvoiceOverrideRepository,
) *PayInvoiceUseCase {
	return &PayInvoiceUseCase{
		expenseRepo:  expenseRepo,
		cardRepo:     cardRepo,
		accountRepo:  accountRepo,
		overrideRepo: overrideRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Execute pays the invoice for (card, month, year).
func (uc *PayInvoiceUseCase) Execute(ctx context.Context, input PayInvoiceInput) (*PayInvoiceOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidInvoiceMonth,
			"invoice month must be between 1 and 12",
			domainerror.ErrInvalidInvoiceMonth,
		)
	}

	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil || card.UserID != input.UserID {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceCardNotFound,
			"card not found",
			domainerror.ErrInvoiceCardNotFound,
		)
	}
	if card.Type != entity.CardTypeCredit {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceNotCreditCard,
			"invoices exist only for credit cards",
			domainerror.ErrInvoiceNotCreditCard,
		)
	}

	account, err := uc.accountRepo.FindByID(ctx, input.PaidFromAccountID)
	if err != nil || account.UserID != input.UserID {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceAccountNotFound,
			"settlement account not found",
			domainerror.ErrInvoiceAccountNotFound,
		)
	}

	existing, err := uc.overrideRepo.FindByKey(ctx, input.CardID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invoice override: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceAlreadyPaid,
			"invoice already paid",
			domainerror.ErrInvoiceAlreadyPaid,
		)
	}

	expenses, err := uc.expenseRepo.FindByCard(ctx, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load card expenses: %w", err)
	}

	computed := billing.Aggregate(billing.ExpandAll(expenses), []*entity.Card{card}, nil, uc.now())
	key := entity.InvoiceKey{CardID: input.CardID, Month: input.Month, Year: input.Year}
	inv, ok := computed[key]
	if !ok {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceNotFound,
			"invoice not found",
			domainerror.ErrInvoiceNotFound,
		)
	}

	paidDate := uc.now()
	if input.PaidDate != nil {
		paidDate = *input.PaidDate
	}

	override := entity.NewInvoiceOverride(
		input.UserID,
		input.CardID,
		input.Month,
		input.Year,
		paidDate,
		input.PaidFromAccountID,
		inv.TotalAmount,
	)

	if err := uc.overrideRepo.CreateWithSettlement(ctx, override); err != nil {
		return nil, fmt.Errorf("failed to record invoice payment: %w", err)
	}

	inv.Status = entity.InvoiceStatusPaid
	inv.PaidDate = &paidDate
	inv.PaidFromAccountID = &override.PaidFromAccountID

	return &PayInvoiceOutput{Invoice: inv}, nil
}
