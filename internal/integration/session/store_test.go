package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStore(client, 30*time.Minute), mr
}

func TestStartAndTouch(t *testing.T) {
	store, _ := newTestStore(t)
	userID := uuid.New()

	sessionID, err := store.Start(context.Background(), userID)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected non-empty session id")
	}

	alive, err := store.Touch(context.Background(), userID, sessionID)
	if err != nil {
		t.Fatalf("failed to touch session: %v", err)
	}
	if !alive {
		t.Error("expected session to be alive")
	}
}

func TestTouchExpiredSession(t *testing.T) {
	store, mr := newTestStore(t)
	userID := uuid.New()

	sessionID, err := store.Start(context.Background(), userID)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	// Simulate the idle timeout passing without activity.
	mr.FastForward(31 * time.Minute)

	alive, err := store.Touch(context.Background(), userID, sessionID)
	if err != nil {
		t.Fatalf("failed to touch session: %v", err)
	}
	if alive {
		t.Error("expected expired session to be gone")
	}
}

func TestTouchResetsDeadline(t *testing.T) {
	store, mr := newTestStore(t)
	userID := uuid.New()

	sessionID, err := store.Start(context.Background(), userID)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	// Activity just before the deadline keeps the session alive past it.
	mr.FastForward(29 * time.Minute)
	if alive, _ := store.Touch(context.Background(), userID, sessionID); !alive {
		t.Fatal("expected session to still be alive")
	}

	mr.FastForward(29 * time.Minute)
	alive, err := store.Touch(context.Background(), userID, sessionID)
	if err != nil {
		t.Fatalf("failed to touch session: %v", err)
	}
	if !alive {
		t.Error("expected touched session to survive past the original deadline")
	}
}

func TestEnd(t *testing.T) {
	store, _ := newTestStore(t)
	userID := uuid.New()

	sessionID, err := store.Start(context.Background(), userID)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	if err := store.End(context.Background(), userID, sessionID); err != nil {
		t.Fatalf("failed to end session: %v", err)
	}

	alive, err := store.Touch(context.Background(), userID, sessionID)
	if err != nil {
		t.Fatalf("failed to touch session: %v", err)
	}
	if alive {
		t.Error("expected ended session to be gone")
	}
}

func TestEndAll(t *testing.T) {
	store, _ := newTestStore(t)
	userID := uuid.New()
	otherID := uuid.New()

	first, err := store.Start(context.Background(), userID)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	second, err := store.Start(context.Background(), userID)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	other, err := store.Start(context.Background(), otherID)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}

	if err := store.EndAll(context.Background(), userID); err != nil {
		t.Fatalf("failed to end all sessions: %v", err)
	}

	if alive, _ := store.Touch(context.Background(), userID, first); alive {
		t.Error("expected first session to be gone")
	}
	if alive, _ := store.Touch(context.Background(), userID, second); alive {
		t.Error("expected second session to be gone")
	}
	if alive, _ := store.Touch(context.Background(), otherID, other); !alive {
		t.Error("expected other user's session to survive")
	}
}
