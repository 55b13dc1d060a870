package cars

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound signals a lookup against an id absent from the store.
var ErrNotFound = errors.New("car not found")

// Store owns the authoritative listing collection for the process lifetime.
// All operations serialize through a single lock.
type Store struct {
	mu    sync.RWMutex
	items []Car
}

// NewStore builds a store holding a copy of the provided seed listings.
func NewStore(seed []Car) *Store {
	items := make([]Car, len(seed))
	copy(items, seed)
	return &Store{items: items}
}

// List returns the full collection in insertion order.
func (s *Store) List() []Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Featured returns the promoted subset in insertion order.
func (s *Store) Featured() []Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	featured := make([]Car, 0, len(s.items))
	for _, car := range s.items {
		if car.Featured {
			featured = append(featured, car)
		}
	}
	return featured
}

// Get returns the listing for id. The boolean reports presence; an unknown id
// is not an error for reads.
func (s *Store) Get(id uuid.UUID) (Car, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, car := range s.items {
		if car.ID == id {
			return car, true
		}
	}
	return Car{}, false
}

// Add assigns an id and timestamps, appends the listing, and returns the stored record.
func (s *Store) Add(car Car) Car {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	car.ID = uuid.New()
	car.CreatedAt = now
	car.UpdatedAt = now
	s.items = append(s.items, car)
	return car
}

// Update merges the patch over the stored record and bumps UpdatedAt.
// Identity and CreatedAt are never touched.
func (s *Store) Update(id uuid.UUID, patch CarPatch) (Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			patch.apply(&s.items[i])
			s.items[i].UpdatedAt = time.Now().UTC()
			return s.items[i], nil
		}
	}
	return Car{}, ErrNotFound
}

// Remove hard-deletes the listing. A second call for the same id fails.
func (s *Store) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Search filters the current collection, preserving insertion order.
func (s *Store) Search(filters Filters) []Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Apply(s.items, filters)
}

func (s *Store) snapshot() []Car {
	items := make([]Car, len(s.items))
	copy(items, s.items)
	return items
}
