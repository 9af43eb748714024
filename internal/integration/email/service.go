// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/home-ledger/backend/internal/application/adapter"
	"github.com/home-ledger/backend/internal/domain/entity"
	domainerror "github.com/home-ledger/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Reset your password - Home Ledger"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// QueueHouseholdInvitationEmail queues a household invitation email.
func (s *Service) QueueHouseholdInvitationEmail(ctx context.Context, input adapter.QueueHouseholdInvitationInput) error {
	subject := fmt.Sprintf("%s invited you to %s - Home Ledger", input.InviterName, input.HouseholdName)

	templateData := map[string]interface{}{
		"inviter_name":   input.InviterName,
		"inviter_email":  input.InviterEmail,
		"household_name": input.HouseholdName,
		"invite_url":     input.InviteURL,
		"expires_in":     input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplateHouseholdInvitation,
		input.InviteEmail,
		"", // Recipient name unknown for invitations
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue household invitation email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
