package household

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// AcceptInviteInput represents the input for accepting an invitation.
type AcceptInviteInput struct {
	Token  string
	UserID uuid.UUID
}

// AcceptInviteOutput represents the output of accepting an invitation.
type AcceptInviteOutput struct {
	HouseholdID   uuid.UUID
	HouseholdName string
}

// AcceptInviteUseCase handles accepting household invitations.
type AcceptInviteUseCase struct {
	householdRepo adapter.HouseholdRepository
	userRepo      adapter.UserRepository
}

// NewAcceptInviteUseCase creates a new AcceptInviteUseCase instance.
func NewAcceptInviteUseCase(householdRepo adapter.HouseholdRepository, userRepo adapter.UserRepository) *AcceptInviteUseCase {
	return &AcceptInviteUseCase{
		householdRepo: householdRepo,
		userRepo:      userRepo,
	}
}

// Execute performs the invitation acceptance.
func (uc *AcceptInviteUseCase) Execute(ctx context.Context, input AcceptInviteInput) (*AcceptInviteOutput, error) {
	invite, err := uc.householdRepo.FindInviteByToken(ctx, input.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to find invite: %w", err)
	}
	if invite == nil || invite.Status != entity.InviteStatusPending {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeInviteNotFound,
			"invitation not found or no longer valid",
			domainerror.ErrInviteNotFound,
		)
	}

	if invite.IsExpired() {
		// Mark it so it never matches again
		_ = uc.householdRepo.UpdateInviteStatus(ctx, invite.ID, entity.InviteStatusExpired)

		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeInviteExpired,
			"invitation has expired",
			domainerror.ErrInviteExpired,
		)
	}

	member, err := uc.householdRepo.FindMember(ctx, invite.HouseholdID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if member != nil {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeAlreadyHouseholdMember,
			"you are already a member of this household",
			domainerror.ErrAlreadyHouseholdMember,
		)
	}

	household, err := uc.householdRepo.FindByID(ctx, invite.HouseholdID)
	if err != nil {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeHouseholdNotFound,
			"household not found",
			domainerror.ErrHouseholdNotFound,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	newMember := entity.NewHouseholdMember(invite.HouseholdID, input.UserID, entity.HouseholdRoleMember)
	newMember.UserName = user.Name
	newMember.UserEmail = user.Email

	if err := uc.householdRepo.AddMember(ctx, newMember); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	if err := uc.householdRepo.UpdateInviteStatus(ctx, invite.ID, entity.InviteStatusAccepted); err != nil {
		return nil, fmt.Errorf("failed to update invite status: %w", err)
	}

	return &AcceptInviteOutput{
		HouseholdID:   household.ID,
		HouseholdName: household.Name,
	}, nil
}
