package users

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound signals a lookup against an unknown user.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken signals a registration against an existing email.
	ErrEmailTaken = errors.New("email already registered")
)

// Store owns the account collection. Email lookup is case-insensitive.
type Store struct {
	mu    sync.RWMutex
	items []User
}

// NewStore builds a store holding a copy of the seed accounts.
func NewStore(seed []User) *Store {
	items := make([]User, len(seed))
	copy(items, seed)
	return &Store{items: items}
}

// FindByEmail returns the account registered under email.
func (s *Store) FindByEmail(email string) (User, bool) {
	normalized := normalizeEmail(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.items {
		if normalizeEmail(user.Email) == normalized {
			return user, true
		}
	}
	return User{}, false
}

// FindByID returns the account for id.
func (s *Store) FindByID(id uuid.UUID) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.items {
		if user.ID == id {
			return user, true
		}
	}
	return User{}, false
}

// Create assigns identity and timestamps and rejects duplicate emails.
func (s *Store) Create(user User) (User, error) {
	normalized := normalizeEmail(user.Email)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if normalizeEmail(existing.Email) == normalized {
			return User{}, ErrEmailTaken
		}
	}
	now := time.Now().UTC()
	user.ID = uuid.New()
	user.Email = normalized
	user.CreatedAt = now
	user.UpdatedAt = now
	s.items = append(s.items, user)
	return user, nil
}

// Update merges the profile patch and bumps UpdatedAt.
func (s *Store) Update(id uuid.UUID, patch ProfilePatch) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			if patch.Name != nil {
				s.items[i].Name = *patch.Name
			}
			if patch.Avatar != nil {
				avatar := *patch.Avatar
				s.items[i].Avatar = &avatar
			}
			if patch.Phone != nil {
				phone := *patch.Phone
				s.items[i].Phone = &phone
			}
			if patch.Address != nil {
				address := *patch.Address
				s.items[i].Address = &address
			}
			s.items[i].UpdatedAt = time.Now().UTC()
			return s.items[i], nil
		}
	}
	return User{}, ErrNotFound
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
