// Package card contains card-related use cases.
package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// CreateCardInput represents the input for card creation.
type CreateCardInput struct {
	UserID      uuid.UUID
	Name        string
	Type        entity.CardType
	AccountID   uuid.UUID
	CreditLimit decimal.Decimal
	DueDay      int
	ClosingDay  int
}

// CreateCardOutput represents the output of card creation.
type CreateCardOutput struct {
	Card *entity.Card
}

// CreateCardUseCase handles card creation logic.
type CreateCardUseCase struct {
	cardRepo    adapter.CardRepository
	accountRepo adapter.AccountRepository
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(cardRepo adapter.CardRepository, accountRepo adapter.AccountRepository) *CreateCardUseCase {
	return &CreateCardUseCase{cardRepo: cardRepo, accountRepo: accountRepo}
}

// Execute performs the card creation.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeMissingCardFields,
			"card name is required",
			nil,
		)
	}

	if !isValidCardType(input.Type) {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeInvalidCardType,
			"card type must be 'debit' or 'credit'",
			domainerror.ErrInvalidCardType,
		)
	}

	if !isValidDayOfMonth(input.DueDay) || !isValidDayOfMonth(input.ClosingDay) {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeInvalidCardDay,
			"due day and closing day must be between 1 and 31",
			domainerror.ErrInvalidCardDay,
		)
	}

	if input.CreditLimit.IsNegative() {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeNegativeCreditLimit,
			"credit limit must not be negative",
			domainerror.ErrNegativeCreditLimit,
		)
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil || account.UserID != input.UserID {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardAccountNotFound,
			"settlement account not found",
			domainerror.ErrCardAccountNotFound,
		)
	}

	card := entity.NewCard(
		input.UserID,
		input.Name,
		input.Type,
		input.AccountID,
		input.CreditLimit,
		input.DueDay,
		input.ClosingDay,
	)

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	return &CreateCardOutput{Card: card}, nil
}

func isValidCardType(t entity.CardType) bool {
	return t == entity.CardTypeDebit || t == entity.CardTypeCredit
}

func isValidDayOfMonth(day int) bool {
	return day >= 1 && day <= 31
}
