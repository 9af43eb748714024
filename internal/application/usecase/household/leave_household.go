package household

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// LeaveHouseholdInput represents the input for leaving a household.
type LeaveHouseholdInput struct {
	HouseholdID uuid.UUID
	UserID      uuid.UUID
}

// LeaveHouseholdOutput represents the output of leaving a household.
type LeaveHouseholdOutput struct {
	Left bool
}

// LeaveHouseholdUseCase handles a member leaving a household.
type LeaveHouseholdUseCase struct {
	householdRepo adapter.HouseholdRepository
}

// NewLeaveHouseholdUseCase creates a new LeaveHouseholdUseCase instance.
func NewLeaveHouseholdUseCase(householdRepo adapter.HouseholdRepository) *LeaveHouseholdUseCase {
	return &LeaveHouseholdUseCase{householdRepo: householdRepo}
}

// Execute performs the leave. The owner cannot leave their own household.
func (uc *LeaveHouseholdUseCase) Execute(ctx context.Context, input LeaveHouseholdInput) (*LeaveHouseholdOutput, error) {
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
	if member.Role == entity.HouseholdRoleOwner {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeOwnerCannotLeave,
			"the owner cannot leave the household",
			domainerror.ErrOwnerCannotLeave,
		)
	}

	if err := uc.householdRepo.RemoveMember(ctx, input.HouseholdID, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to leave household: %w", err)
	}

	return &LeaveHouseholdOutput{Left: true}, nil
}
