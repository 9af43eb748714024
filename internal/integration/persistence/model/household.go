package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// HouseholdModel represents the households table in the database.
type HouseholdModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the HouseholdModel.
func (HouseholdModel) TableName() string {
	return "households"
}

// ToEntity converts a HouseholdModel to a domain Household entity.
func (m *HouseholdModel) ToEntity() *entity.Household {
	return &entity.Household{
		ID:        m.ID,
		Name:      m.Name,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// HouseholdFromEntity creates a HouseholdModel from a domain Household entity.
func HouseholdFromEntity(household *entity.Household) *HouseholdModel {
	return &HouseholdModel{
		ID:        household.ID,
		Name:      household.Name,
		CreatedBy: household.CreatedBy,
		CreatedAt: household.CreatedAt,
		UpdatedAt: household.UpdatedAt,
	}
}

// HouseholdMemberModel represents the household_members table in the database.
type HouseholdMemberModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Role        string    `gorm:"type:varchar(20);not null"`
	JoinedAt    time.Time `gorm:"not null"`
	// User information (joined from users table)
	UserName  string `gorm:"-"`
	UserEmail string `gorm:"-"`
}

// TableName returns the table name for the HouseholdMemberModel.
func (HouseholdMemberModel) TableName() string {
	return "household_members"
}

// ToEntity converts a HouseholdMemberModel to a domain HouseholdMember entity.
func (m *HouseholdMemberModel) ToEntity() *entity.HouseholdMember {
	return &entity.HouseholdMember{
		ID:          m.ID,
		HouseholdID: m.HouseholdID,
		UserID:      m.UserID,
		Role:        entity.HouseholdRole(m.Role),
		JoinedAt:    m.JoinedAt,
		UserName:    m.UserName,
		UserEmail:   m.UserEmail,
	}
}

// HouseholdMemberFromEntity creates a HouseholdMemberModel from a domain entity.
func HouseholdMemberFromEntity(member *entity.HouseholdMember) *HouseholdMemberModel {
	return &HouseholdMemberModel{
		ID:          member.ID,
		HouseholdID: member.HouseholdID,
		UserID:      member.UserID,
		Role:        string(member.Role),
		JoinedAt:    member.JoinedAt,
	}
}

// HouseholdInviteModel represents the household_invites table in the database.
type HouseholdInviteModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;index"`
	Email       string    `gorm:"type:varchar(255);not null"`
	Token       string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	InvitedBy   uuid.UUID `gorm:"type:uuid;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the HouseholdInviteModel.
func (HouseholdInviteModel) TableName() string {
	return "household_invites"
}

// ToEntity converts a HouseholdInviteModel to a domain HouseholdInvite entity.
func (m *HouseholdInviteModel) ToEntity() *entity.HouseholdInvite {
	return &entity.HouseholdInvite{
		ID:          m.ID,
		HouseholdID: m.HouseholdID,
		Email:       m.Email,
		Token:       m.Token,
		InvitedBy:   m.InvitedBy,
		Status:      entity.InviteStatus(m.Status),
		ExpiresAt:   m.ExpiresAt,
		CreatedAt:   m.CreatedAt,
	}
}

// HouseholdInviteFromEntity creates a HouseholdInviteModel from a domain entity.
func HouseholdInviteFromEntity(invite *entity.HouseholdInvite) *HouseholdInviteModel {
	return &HouseholdInviteModel{
		ID:          invite.ID,
		HouseholdID: invite.HouseholdID,
		Email:       invite.Email,
		Token:       invite.Token,
		InvitedBy:   invite.InvitedBy,
		Status:      string(invite.Status),
		ExpiresAt:   invite.ExpiresAt,
		CreatedAt:   invite.CreatedAt,
	}
}
