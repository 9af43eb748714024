package household

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// ListMembersInput represents the input for listing household members.
type ListMembersInput struct {
	HouseholdID uuid.UUID
	UserID      uuid.UUID
}

// ListMembersOutput represents the output of listing household members.
type ListMembersOutput struct {
	Members []*entity.HouseholdMember
}

// ListMembersUseCase handles listing the members of a household.
type ListMembersUseCase struct {
	householdRepo adapter.HouseholdRepository
}

// NewListMembersUseCase creates a new ListMembersUseCase instance.
func NewListMembersUseCase(householdRepo adapter.HouseholdRepository) *ListMembersUseCase {
	return &ListMembersUseCase{householdRepo: householdRepo}
}

// Execute lists the household's members. Only members can see the list.
func (uc *ListMembersUseCase) Execute(ctx context.Context, input ListMembersInput) (*ListMembersOutput, error) {
	member, err := uc.householdRepo.FindMember(ctx, input.HouseholdID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if member == nil {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeNotHouseholdMember,
			"you are not a member of this household",
			domainerror.ErrNotHouseholdMember,
		)
	}

	members, err := uc.householdRepo.FindMembers(ctx, input.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return &ListMembersOutput{Members: members}, nil
}
