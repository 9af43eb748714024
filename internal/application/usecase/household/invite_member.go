package household

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

const (
	// InviteTokenLength is the length of the invite token in bytes.
	InviteTokenLength = 32
	// InviteExpirationDays is the number of days until an invite expires.
	InviteExpirationDays = 7
)

// emailRegex is compiled once at package level for performance.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// InviteMemberInput represents the input for inviting a member.
type InviteMemberInput struct {
	HouseholdID uuid.UUID
	Email       string
	InviterID   uuid.UUID
	InviteURL   string
}

// InviteMemberOutput represents the output of inviting a member.
type InviteMemberOutput struct {
	Invite *entity.HouseholdInvite
}

// InviteMemberUseCase handles inviting members to a household. The invitation
// email is queued for asynchronous delivery; a queue failure does not fail
// the invite.
type InviteMemberUseCase struct {
	householdRepo adapter.HouseholdRepository
	userRepo      adapter.UserRepository
	emailService  adapter.EmailService
}

// NewInviteMemberUseCase creates a new InviteMemberUseCase instance.
func NewInviteMemberUseCase(
	householdRepo adapter.HouseholdRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *InviteMemberUseCase {
	return &InviteMemberUseCase{
		householdRepo: householdRepo,
		userRepo:      userRepo,
		emailService:  emailService,
	}
}

// Execute performs the member invitation.
func (uc *InviteMemberUseCase) Execute(ctx context.Context, input InviteMemberInput) (*InviteMemberOutput, error) {
	// Normalize email
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if !isValidEmail(email) {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeInvalidHouseholdEmail,
			"invalid email address",
			domainerror.ErrInvalidHouseholdEmail,
		)
	}

	household, err := uc.householdRepo.FindByID(ctx, input.HouseholdID)
	if err != nil {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeHouseholdNotFound,
			"household not found",
			domainerror.ErrHouseholdNotFound,
		)
	}

	// Only the owner can invite
	inviterMember, err := uc.householdRepo.FindMember(ctx, input.HouseholdID, input.InviterID)
	if err != nil {
		return nil, fmt.Errorf("failed to check inviter membership: %w", err)
	}
	if inviterMember == nil {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeNotHouseholdMember,
			"you are not a member of this household",
			domainerror.ErrNotHouseholdMember,
		)
	}
	if inviterMember.Role != entity.HouseholdRoleOwner {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeNotHouseholdOwner,
			"only the household owner can invite members",
			domainerror.ErrNotHouseholdOwner,
		)
	}

	inviter, err := uc.userRepo.FindByID(ctx, input.InviterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inviter info: %w", err)
	}
	if strings.EqualFold(inviter.Email, email) {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeCannotInviteSelf,
			"you cannot invite yourself",
			domainerror.ErrCannotInviteSelf,
		)
	}

	// Check if the invitee is already a member (by email)
	existingUser, err := uc.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		member, err := uc.householdRepo.FindMember(ctx, input.HouseholdID, existingUser.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing membership: %w", err)
		}
		if member != nil {
			return nil, domainerror.NewHouseholdError(
				domainerror.ErrCodeAlreadyHouseholdMember,
				"user is already a member of this household",
				domainerror.ErrAlreadyHouseholdMember,
			)
		}
	}

	existingInvite, err := uc.householdRepo.FindPendingInvite(ctx, input.HouseholdID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing invites: %w", err)
	}
	if existingInvite != nil {
		return nil, domainerror.NewHouseholdError(
			domainerror.ErrCodeInvitePending,
			"an invitation is already pending for this email",
			domainerror.ErrInvitePending,
		)
	}

	token, err := generateInviteToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite token: %w", err)
	}

	expiresAt := time.Now().UTC().AddDate(0, 0, InviteExpirationDays)
	invite := entity.NewHouseholdInvite(input.HouseholdID, email, token, input.InviterID, expiresAt)

	if err := uc.householdRepo.CreateInvite(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	queueInput := adapter.QueueHouseholdInvitationInput{
		InviterName:   inviter.Name,
		InviterEmail:  inviter.Email,
		HouseholdName: household.Name,
		InviteEmail:   email,
		InviteURL:     fmt.Sprintf("%s?token=%s", input.InviteURL, token),
		ExpiresIn:     fmt.Sprintf("%d days", InviteExpirationDays),
	}
	if err := uc.emailService.QueueHouseholdInvitationEmail(ctx, queueInput); err != nil {
		slog.Warn("failed to queue invitation email",
			"household_id", input.HouseholdID,
			"error", err,
		)
	}

	return &InviteMemberOutput{Invite: invite}, nil
}

// isValidEmail validates email format.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// generateInviteToken generates a secure random token for invites.
func generateInviteToken() (string, error) {
	bytes := make([]byte, InviteTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
