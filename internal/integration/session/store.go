// Package session implements the session activity store on Redis. Each
// session is a key with an idle TTL; touching the key on every authenticated
// request pushes the deadline forward, and a session that stays quiet past
// the timeout simply expires server-side.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/home-ledger/backend/internal/application/adapter"
)

const sessionIDLength = 16

// Store implements adapter.SessionStore on Redis.
type Store struct {
	client      *redis.Client
	idleTimeout time.Duration
}

// NewStore creates a new session store.
func NewStore(client *redis.Client, idleTimeout time.Duration) *Store {
	return &Store{client: client, idleTimeout: idleTimeout}
}

var _ adapter.SessionStore = (*Store)(nil)

// Start registers a new session for the user and returns its id.
func (s *Store) Start(ctx context.Context, userID uuid.UUID) (string, error) {
	idBytes := make([]byte, sessionIDLength)
	if _, err := rand.Read(idBytes); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	sessionID := hex.EncodeToString(idBytes)

	key := s.key(userID, sessionID)
	if err := s.client.Set(ctx, key, time.Now().UTC().Format(time.RFC3339), s.idleTimeout).Err(); err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}

	return sessionID, nil
}

// Touch refreshes the session's inactivity deadline. It returns false when
// the session no longer exists.
func (s *Store) Touch(ctx context.Context, userID uuid.UUID, sessionID string) (bool, error) {
	key := s.key(userID, sessionID)

	ok, err := s.client.Expire(ctx, key, s.idleTimeout).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("failed to touch session: %w", err)
	}

	return ok, nil
}

// End removes the session.
func (s *Store) End(ctx context.Context, userID uuid.UUID, sessionID string) error {
	if err := s.client.Del(ctx, s.key(userID, sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

// EndAll removes every session of the user.
func (s *Store) EndAll(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("session:%s:*", userID)

	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to end session %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan sessions: %w", err)
	}

	return nil
}

func (s *Store) key(userID uuid.UUID, sessionID string) string {
	return fmt.Sprintf("session:%s:%s", userID, sessionID)
}
