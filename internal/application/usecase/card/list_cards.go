package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/billing"
	"github.com/home-ledger/backend/internal/domain/entity"
)

// CardWithLimits pairs a card with its computed limit figures. UsedLimit is
// the sum of every non-paid expense instance on the card; AvailableLimit is
// the credit limit minus that sum and may go negative when overspent.
type CardWithLimits struct {
	Card           *entity.Card
	UsedLimit      decimal.Decimal
	AvailableLimit decimal.Decimal
}

// ListCardsInput represents the input for listing cards.
type ListCardsInput struct {
	UserID uuid.UUID
}

// ListCardsOutput represents the output of listing cards.
type ListCardsOutput struct {
	Cards []CardWithLimits
}

// ListCardsUseCase handles the card listing logic including limit figures.
type ListCardsUseCase struct {
	cardRepo    adapter.CardRepository
	expenseRepo adapter.ExpenseRepository
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(cardRepo adapter.CardRepository, expenseRepo adapter.ExpenseRepository) *ListCardsUseCase {
	return &ListCardsUseCase{cardRepo: cardRepo, expenseRepo: expenseRepo}
}

// Execute lists the user's cards with their used and available limits.
func (uc *ListCardsUseCase) Execute(ctx context.Context, input ListCardsInput) (*ListCardsOutput, error) {
	cards, err := uc.cardRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	instances := billing.ExpandAll(expenses)

	out := make([]CardWithLimits, 0, len(cards))
	for _, c := range cards {
		used := billing.UsedLimit(c.ID, instances)
		out = append(out, CardWithLimits{
			Card:           c,
			UsedLimit:      used,
			AvailableLimit: c.CreditLimit.Sub(used),
		})
	}

	return &ListCardsOutput{Cards: out}, nil
}
