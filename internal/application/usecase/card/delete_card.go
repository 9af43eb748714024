package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// DeleteCardInput represents the input for card deletion.
type DeleteCardInput struct {
	UserID uuid.UUID
	CardID uuid.UUID
}

// DeleteCardOutput represents the output of card deletion.
type DeleteCardOutput struct {
	Deleted bool
}

// DeleteCardUseCase handles card deletion logic. A card that still has
// expenses charged to it cannot be deleted.
type DeleteCardUseCase struct {
	cardRepo adapter.CardRepository
}

// NewDeleteCardUseCase creates a new DeleteCardUseCase instance.
func NewDeleteCardUseCase(cardRepo adapter.CardRepository) *DeleteCardUseCase {
	return &DeleteCardUseCase{cardRepo: cardRepo}
}

// Execute performs the card deletion.
func (uc *DeleteCardUseCase) Execute(ctx context.Context, input DeleteCardInput) (*DeleteCardOutput, error) {
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

	count, err := uc.cardRepo.CountExpenses(ctx, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("failed to count card expenses: %w", err)
	}
	if count > 0 {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardHasExpenses,
			fmt.Sprintf("card still has %d expenses", count),
			domainerror.ErrCardHasExpenses,
		)
	}

	if err := uc.cardRepo.Delete(ctx, input.CardID); err != nil {
		return nil, fmt.Errorf("failed to delete card: %w", err)
	}

	return &DeleteCardOutput{Deleted: true}, nil
}
