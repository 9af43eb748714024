// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/home-ledger/backend/internal/domain/entity"
)

// CreateHouseholdRequest represents the request body for household creation.
type CreateHouseholdRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// InviteMemberRequest represents the request body for inviting a member.
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AcceptInviteRequest represents the request body for accepting an invitation.
type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}

// HouseholdResponse represents a single household in API responses.
type HouseholdResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// HouseholdListResponse represents the response for listing households.
type HouseholdListResponse struct {
	Households []HouseholdResponse `json:"households"`
}

// HouseholdMemberResponse represents a household member in API responses.
type HouseholdMemberResponse struct {
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// HouseholdMemberListResponse represents the response for listing members.
type HouseholdMemberListResponse struct {
	Members []HouseholdMemberResponse `json:"members"`
}

// HouseholdInviteResponse represents an invitation in API responses.
type HouseholdInviteResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AcceptInviteResponse represents the response for accepting an invitation.
type AcceptInviteResponse struct {
	HouseholdID   string `json:"household_id"`
	HouseholdName string `json:"household_name"`
}

// ToHouseholdResponse converts a domain Household entity to its DTO.
func ToHouseholdResponse(h *entity.Household) HouseholdResponse {
	return HouseholdResponse{
		ID:        h.ID.String(),
		Name:      h.Name,
		CreatedBy: h.CreatedBy.String(),
		CreatedAt: h.CreatedAt,
	}
}

// ToHouseholdListResponse converts a slice of households to its DTO.
func ToHouseholdListResponse(households []*entity.Household) HouseholdListResponse {
	responses := make([]HouseholdResponse, len(households))
	for i, h := range households {
		responses[i] = ToHouseholdResponse(h)
	}
	return HouseholdListResponse{Households: responses}
}

// ToHouseholdMemberListResponse converts members to their list DTO.
func ToHouseholdMemberListResponse(members []*entity.HouseholdMember) HouseholdMemberListResponse {
	responses := make([]HouseholdMemberResponse, len(members))
	for i, m := range members {
		responses[i] = HouseholdMemberResponse{
			UserID:   m.UserID.String(),
			Name:     m.UserName,
			Email:    m.UserEmail,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
		}
	}
	return HouseholdMemberListResponse{Members: responses}
}

// ToHouseholdInviteResponse converts a domain HouseholdInvite to its DTO.
func ToHouseholdInviteResponse(invite *entity.HouseholdInvite) HouseholdInviteResponse {
	return HouseholdInviteResponse{
		ID:        invite.ID.String(),
		Email:     invite.Email,
		Status:    string(invite.Status),
		ExpiresAt: invite.ExpiresAt,
		CreatedAt: invite.CreatedAt,
	}
}
