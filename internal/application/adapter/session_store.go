// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SessionStore tracks per-user session activity with an inactivity deadline.
// A session that is not touched within the idle timeout disappears and the
// user must log in again.
type SessionStore interface {
	// Start registers a new session for the user and returns its id.
	Start(ctx context.Context, userID uuid.UUID) (string, error)

	// Touch refreshes the session's inactivity deadline. It returns false
	// when the session no longer exists (expired or logged out).
	Touch(ctx context.Context, userID uuid.UUID, sessionID string) (bool, error)

	// End removes the session.
	End(ctx context.Context, userID uuid.UUID, sessionID string) error

	// EndAll removes every session of the user.
	EndAll(ctx context.Context, userID uuid.UUID) error
}
