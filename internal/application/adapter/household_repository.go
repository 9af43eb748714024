// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// HouseholdRepository defines the interface for household persistence operations.
type HouseholdRepository interface {
	// Create creates a household and its owner membership in one transaction.
	Create(ctx context.Context, household *entity.Household, owner *entity.HouseholdMember) error

	// FindByID retrieves a household by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Household, error)

	// FindByUser retrieves the households the user is a member of.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Household, error)

	// FindMember retrieves the membership of a user in a household, or nil.
	FindMember(ctx context.Context, householdID, userID uuid.UUID) (*entity.HouseholdMember, error)

	// FindMembers retrieves all members of a household with user info.
	FindMembers(ctx context.Context, householdID uuid.UUID) ([]*entity.HouseholdMember, error)

	// AddMember adds a member to a household.
	AddMember(ctx context.Context, member *entity.HouseholdMember) error

	// RemoveMember removes a member from a household.
	RemoveMember(ctx context.Context, householdID, userID uuid.UUID) error

	// CreateInvite persists a pending invitation.
	CreateInvite(ctx context.Context, invite *entity.HouseholdInvite) error

	// FindInviteByToken retrieves a pending invitation by its token, or nil.
	FindInviteByToken(ctx context.Context, token string) (*entity.HouseholdInvite, error)

	// FindPendingInvite retrieves a pending invite for (household, email), or nil.
	FindPendingInvite(ctx context.Context, householdID uuid.UUID, email string) (*entity.HouseholdInvite, error)

	// UpdateInviteStatus updates an invitation's status.
	UpdateInviteStatus(ctx context.Context, inviteID uuid.UUID, status entity.InviteStatus) error
}
