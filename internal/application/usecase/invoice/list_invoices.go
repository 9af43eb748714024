// Package invoice contains invoice-related use cases. Invoices are computed
// on every read by folding expanded expense instances into per-card billing
// months and merging the persisted payment overrides on top; nothing derived
// is ever stored.
package invoice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/billing"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// ListInvoicesInput represents the input for listing invoices. CardID narrows
// the listing to one card; Month/Year (both or neither) narrow it to one
// billing month.
type ListInvoicesInput struct {
	UserID uuid.UUID
	CardID *uuid.UUID
	Month  *time.Month
	Year   *int
}

// ListInvoicesOutput represents the output of listing invoices.
type ListInvoicesOutput struct {
	Invoices []*entity.Invoice
}

// ListInvoicesUseCase computes the user's invoices from expenses, cards and
// payment overrides.
type ListInvoicesUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	cardRepo     adapter.CardRepository
	overrideRepo adapter.InvoiceOverrideRepository
	now          func() time.Time
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(
	expenseRepo adapter.ExpenseRepository,
	cardRepo adapter.CardRepository,
	overrideRepo adapter.InvoiceOverrideRepository,
) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		expenseRepo:  expenseRepo,
		cardRepo:     cardRepo,
		overrideRepo: overrideRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Execute computes and lists the invoices, ordered by year, month and card.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, input ListInvoicesInput) (*ListInvoicesOutput, error) {
	if (input.Month == nil) != (input.Year == nil) {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidInvoiceMonth,
			"month and year must be provided together",
			domainerror.ErrInvalidInvoiceMonth,
		)
	}

	cards, err := uc.cardRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	overrides, err := uc.overrideRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice overrides: %w", err)
	}

	computed := billing.Aggregate(billing.ExpandAll(expenses), cards, overrides, uc.now())

	invoices := make([]*entity.Invoice, 0, len(computed))
	for _, inv := range computed {
		if input.CardID != nil && inv.CardID != *input.CardID {
			continue
		}
		if input.Month != nil && inv.Month != *input.Month {
			continue
		}
		if input.Year != nil && inv.Year != *input.Year {
			continue
		}
		invoices = append(invoices, inv)
	}

	sort.Slice(invoices, func(i, j int) bool {
		a, b := invoices[i], invoices[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.CardID.String() < b.CardID.String()
	})

	return &ListInvoicesOutput{Invoices: invoices}, nil
}
