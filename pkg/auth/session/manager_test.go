package session

import (
	"context"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	values map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (f *fakeStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", redislib.Nil
}

func (f *fakeStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) AccessSessionKey(accessID string) string {
	return "dl:session:access:" + accessID
}

func newTestManager() (*Manager, *fakeStore) {
	store := newFakeStore()
	return &Manager{store: store, keyer: fakeKeyer{}, ttl: time.Hour}, store
}

func TestGenerateStoresRefreshToken(t *testing.T) {
	m, store := newTestManager()

	token, err := m.Generate(context.Background(), "access-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if store.values["dl:session:access:access-1"] != token {
		t.Fatal("expected token stored under access session key")
	}

	has, err := m.HasSession(context.Background(), "access-1")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !has {
		t.Fatal("expected session to exist")
	}
}

func TestRotateInvalidatesOldSession(t *testing.T) {
	m, store := newTestManager()
	ctx := context.Background()

	token, err := m.Generate(ctx, "access-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	newID, newToken, err := m.Rotate(ctx, "access-1", token)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if newID == "access-1" {
		t.Fatal("expected a fresh access id")
	}
	if newToken == token {
		t.Fatal("expected a fresh refresh token")
	}
	if _, ok := store.values["dl:session:access:access-1"]; ok {
		t.Fatal("expected old session to be deleted")
	}

	has, err := m.HasSession(ctx, newID)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !has {
		t.Fatal("expected new session to exist")
	}
}

func TestRotateRejectsMismatchedToken(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	if _, err := m.Generate(ctx, "access-1"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := m.Rotate(ctx, "access-1", "forged"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRotateRejectsUnknownSession(t *testing.T) {
	m, _ := newTestManager()
	if _, _, err := m.Rotate(context.Background(), "ghost", "whatever"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRevokeRemovesSession(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	if _, err := m.Generate(ctx, "access-1"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := m.Revoke(ctx, "access-1"); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	has, err := m.HasSession(ctx, "access-1")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if has {
		t.Fatal("expected session to be gone")
	}
}
