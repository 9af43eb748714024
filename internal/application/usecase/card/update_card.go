package card

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

// UpdateCardInput represents the input for card update. Nil fields are left
// unchanged.
type UpdateCardInput struct {
	UserID      uuid.UUID
	CardID      uuid.UUID
	Name        *string
	Type        *entity.CardType
	AccountID   *uuid.UUID
	CreditLimit *decimal.Decimal
	DueDay      *int
	ClosingDay  *int
}

// UpdateCardOutput represents the output of card update.
type UpdateCardOutput struct {
	Card *entity.Card
}

// UpdateCardUseCase handles card update logic.
type UpdateCardUseCase struct {
	cardRepo    adapter.CardRepository
	accountRepo adapter.AccountRepository
}

// NewUpdateCardUseCase creates a new UpdateCardUseCase instance.
func NewUpdateCardUseCase(cardRepo adapter.CardRepository, accountRepo adapter.AccountRepository) *UpdateCardUseCase {
	return &UpdateCardUseCase{cardRepo: cardRepo, accountRepo: accountRepo}
}

// Execute performs the card update. Changing the closing day only affects how
// future listings bucket instances into invoices; nothing stored is rewritten.
func (uc *UpdateCardUseCase) Execute(ctx context.Context, input UpdateCardInput) (*UpdateCardOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardNotFound,
			"card not found",
			domainerror.ErrCardNotFound,
		)
	}

	if card.UserID != input.UserID {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeNotAuthorizedCard,
			"not authorized to modify card",
			domainerror.ErrNotAuthorizedToModifyCard,
		)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeMissingCardFields,
				"card name is required",
				nil,
			)
		}
		card.Name = *input.Name
	}

	if input.Type != nil {
		if !isValidCardType(*input.Type) {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeInvalidCardType,
				"card type must be 'debit' or 'credit'",
				domainerror.ErrInvalidCardType,
			)
		}
		card.Type = *input.Type
	}

	if input.AccountID != nil {
		account, err := uc.accountRepo.FindByID(ctx, *input.AccountID)
		if err != nil || account.UserID != input.UserID {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeCardAccountNotFound,
				"settlement account not found",
				domainerror.ErrCardAccountNotFound,
			)
		}
		card.AccountID = *input.AccountID
	}

	if input.CreditLimit != nil {
		if input.CreditLimit.IsNegative() {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeNegativeCreditLimit,
				"credit limit must not be negative",
				domainerror.ErrNegativeCreditLimit,
			)
		}
		card.CreditLimit = *input.CreditLimit
	}

	if input.DueDay != nil {
		if !isValidDayOfMonth(*input.DueDay) {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeInvalidCardDay,
				"due day must be between 1 and 31",
				domainerror.ErrInvalidCardDay,
			)
		}
		card.DueDay = *input.DueDay
	}

	if input.ClosingDay != nil {
		if !isValidDayOfMonth(*input.ClosingDay) {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeInvalidCardDay,
				"closing day must be between 1 and 31",
				domainerror.ErrInvalidCardDay,
			)
		}
		card.ClosingDay = *input.ClosingDay
	}

	card.UpdatedAt = time.Now().UTC()

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	return &UpdateCardOutput{Card: card}, nil
}
