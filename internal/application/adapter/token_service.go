// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the validated claims of a token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	SessionID string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair bound
	// to a session.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email, sessionID string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token (including its server-side
	// record) and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken revokes a refresh token.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// InvalidateAllUserTokens revokes every refresh token of a user.
	InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// PasswordResetTokenService defines the interface for password reset tokens.
type PasswordResetTokenService interface {
	// Generate creates and stores a reset token for the user.
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// Consume validates a reset token and marks it used, returning the user it
	// belongs to.
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}
