// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HouseholdRole represents the role of a member in a household.
type HouseholdRole string

const (
	HouseholdRoleOwner  HouseholdRole = "owner"
	HouseholdRoleMember HouseholdRole = "member"
)

// InviteStatus represents the status of a household invitation.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusExpired  InviteStatus = "expired"
)

// Household represents a shared finance space for family members.
type Household struct {
	ID        uuid.UUID
	Name      string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewHousehold creates a new Household entity.
func NewHousehold(name string, createdBy uuid.UUID) *Household {
	now := time.Now().UTC()

	return &Household{
		ID:        uuid.New(),
		Name:      name,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HouseholdMember represents a member of a household.
type HouseholdMember struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	UserID      uuid.UUID
	Role        HouseholdRole
	JoinedAt    time.Time
	// User information (populated when needed)
	UserName  string
	UserEmail string
}

// NewHouseholdMember creates a new HouseholdMember entity.
func NewHouseholdMember(householdID, userID uuid.UUID, role HouseholdRole) *HouseholdMember {
	return &HouseholdMember{
		ID:          uuid.New(),
		HouseholdID: householdID,
		UserID:      userID,
		Role:        role,
		JoinedAt:    time.Now().UTC(),
	}
}

// HouseholdInvite represents an email invitation to join a household.
type HouseholdInvite struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Email       string
	Token       string
	InvitedBy   uuid.UUID
	Status      InviteStatus
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// NewHouseholdInvite creates a new HouseholdInvite entity.
func NewHouseholdInvite(householdID uuid.UUID, email, token string, invitedBy uuid.UUID, expiresAt time.Time) *HouseholdInvite {
	return &HouseholdInvite{
		ID:          uuid.New(),
		HouseholdID: householdID,
		Email:       email,
		Token:       token,
		InvitedBy:   invitedBy,
		Status:      InviteStatusPending,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsExpired checks if the invitation has expired.
func (i *HouseholdInvite) IsExpired() bool {
	return time.Now().UTC().After(i.ExpiresAt)
}
