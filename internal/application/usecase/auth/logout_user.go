// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/home-ledger/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	UserID       uuid.UUID
	SessionID    string
	RefreshToken string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
	sessionStore adapter.SessionStore
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService, sessionStore adapter.SessionStore) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
		sessionStore: sessionStore,
	}
}

// Execute performs the user logout. Logout is best-effort: a failing token
// revocation still ends the session.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	if input.RefreshToken != "" {
		if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
			slog.Warn("Failed to invalidate refresh token on logout",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return uc.sessionStore.End(ctx, input.UserID, input.SessionID)
}
