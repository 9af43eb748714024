package household

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// RemoveMemberInput represents the input for removing a household member.
type RemoveMemberInput struct {
	HouseholdID  uuid.UUID
	UserID       uuid.UUID // Acting user; must be the owner
	TargetUserID uuid.UUID
}

// RemoveMemberOutput represents the output of removing a household member.
type RemoveMemberOutput struct {
	Removed bool
}

// RemoveMemberUseCase handles removing a member from a household.
type RemoveMemberUseCase struct {
	householdRepo adapter.HouseholdRepository
}

// NewRemoveMemberUseCase creates a new RemoveMemberUseCase instance.
func NewRemoveMemberUseCase(householdRepo adapter.HouseholdRepository) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{householdRepo: householdRepo}
}

// Execute performs the member removal. Only the owner can remove members, and
// the owner cannot remove themselves; they delete the household instead.
func (uc *RemoveMemberUseCase) Execute(ctx context.Context, input RemoveMemberInput) (*RemoveMemberOutput, error) {
	actingMember, err := uc.householdRepo.FindMember(ctx, input.HouseholdID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if actingMember == nil {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeNotHouseholdMember,
			"you are not a member of this household",
			domainerror.ErrNotHouseholdMember,
		)
	}
	if actingMember.Role != entity.HouseholdRoleOwner {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeNotHouseholdOwner,
			"only the household owner can remove members",
			domainerror.ErrNotHouseholdOwner,
		)
	}

	if input.TargetUserID == input.UserID {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeOwnerCannotLeave,
			"the owner cannot leave the household",
			domainerror.ErrOwnerCannotLeave,
		)
	}

	targetMember, err := uc.householdRepo.FindMember(ctx, input.HouseholdID, input.TargetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check target membership: %w", err)
	}
	if targetMember == nil {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeNotHouseholdMember,
			"user is not a member of this household",
			domainerror.ErrNotHouseholdMember,
		)
	}

	if err := uc.householdRepo.RemoveMember(ctx, input.HouseholdID, input.TargetUserID); err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	return &RemoveMemberOutput{Removed: true}, nil
}
