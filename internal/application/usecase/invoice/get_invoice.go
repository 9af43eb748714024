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

// GetInvoiceInput represents the input for a single invoice lookup.
type GetInvoiceInput struct {
	UserID uuid.UUID
	CardID uuid.UUID
	Month  time.Month
	Year   int
}

// GetInvoiceOutput represents the output of a single invoice lookup. Items
// are the expense instances billed to the invoice, ordered by date.
type GetInvoiceOutput struct {
	Invoice *entity.Invoice
	Items   []entity.ExpenseInstance
}

// GetInvoiceUseCase computes one invoice together with its billed items.
type GetInvoiceUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	cardRepo     adapter.CardRepository
	overrideRepo adapter.InvoiceOverrideRepository
	now          func() time.Time
}

// NewGetInvoiceUseCase creates a new GetInvoiceUseCase instance.
func NewGetInvoiceUseCase(
	expenseRepo adapter.ExpenseRepository,
	cardRepo adapter.CardRepository,
	overrideRepo adapter.InvoiceOverrideRepository,
) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{
		expenseRepo:  expenseRepo,
		cardRepo:     cardRepo,
		overrideRepo: overrideRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Execute computes the invoice for (card, month, year).
func (uc *GetInvoiceUseCase) Execute(ctx context.Context, input GetInvoiceInput) (*GetInvoiceOutput, error) {
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

	expenses, err := uc.expenseRepo.FindByCard(ctx, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load card expenses: %w", err)
	}

	overrides, err := uc.overrideRepo.FindByCard(ctx, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice overrides: %w", err)
	}

	instances := billing.ExpandAll(expenses)
	computed := billing.Aggregate(instances, []*entity.Card{card}, overrides, uc.now())

	key := entity.InvoiceKey{CardID: input.CardID, Month: input.Month, Year: input.Year}
	inv, ok := computed[key]
	if !ok {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceNotFound,
			"invoice not found",
			domainerror.ErrInvoiceNotFound,
		)
	}

	items := make([]entity.ExpenseInstance, 0, inv.ItemCount)
	for _, inst := range instances {
		if inst.CardID == nil || *inst.CardID != input.CardID {
			continue
		}
		month, year := billing.BillingMonth(card, inst.Date)
		if month == input.Month && year == input.Year {
			items = append(items, inst)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})

	return &GetInvoiceOutput{Invoice: inv, Items: items}, nil
}
