package household

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
)

// ListHouseholdsInput represents the input for listing a user's households.
type ListHouseholdsInput struct {
	UserID uuid.UUID
}

// ListHouseholdsOutput represents the output of listing a user's households.
type ListHouseholdsOutput struct {
	Households []*entity.Household
}

// ListHouseholdsUseCase handles listing the households a user belongs to.
type ListHouseholdsUseCase struct {
	householdRepo adapter.HouseholdRepository
}

// NewListHouseholdsUseCase creates a new ListHouseholdsUseCase instance.
func NewListHouseholdsUseCase(householdRepo adapter.HouseholdRepository) *ListHouseholdsUseCase {
	return &ListHouseholdsUseCase{householdRepo: householdRepo}
}

// Execute lists the user's households.
func (uc *ListHouseholdsUseCase) Execute(ctx context.Context, input ListHouseholdsInput) (*ListHouseholdsOutput, error) {
	households, err := uc.householdRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list households: %w", err)
	}

	return &ListHouseholdsOutput{Households: households}, nil
}
