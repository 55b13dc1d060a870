package engagement

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound signals a lookup against an id absent from the store.
var ErrNotFound = errors.New("record not found")

// Store owns inquiries, test drives, and favorites. The three collections are
// independent; operations serialize through a single lock.
type Store struct {
	mu         sync.RWMutex
	inquiries  []Inquiry
	testDrives []TestDrive
	favorites  []Favorite
}

// StoreSeed is the constructor-injected initial data.
type StoreSeed struct {
	Inquiries  []Inquiry
	TestDrives []TestDrive
	Favorites  []Favorite
}

// NewStore builds a store holding copies of the seed collections.
func NewStore(seed StoreSeed) *Store {
	s := &Store{
		inquiries:  make([]Inquiry, len(seed.Inquiries)),
		testDrives: make([]TestDrive, len(seed.TestDrives)),
		favorites:  make([]Favorite, len(seed.Favorites)),
	}
	copy(s.inquiries, seed.Inquiries)
	copy(s.testDrives, seed.TestDrives)
	copy(s.favorites, seed.Favorites)
	return s
}

// CreateInquiry assigns identity, pending status, and timestamps.
func (s *Store) CreateInquiry(inquiry Inquiry) Inquiry {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	inquiry.ID = uuid.New()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now
	s.inquiries = append(s.inquiries, inquiry)
	return inquiry
}

// FindInquiry searches the full backing collection.
func (s *Store) FindInquiry(id uuid.UUID) (Inquiry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inquiry := range s.inquiries {
		if inquiry.ID == id {
			return inquiry, true
		}
	}
	return Inquiry{}, false
}

// UpdateInquiry merges the patch and bumps UpdatedAt.
func (s *Store) UpdateInquiry(id uuid.UUID, patch InquiryPatch) (Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inquiries {
		if s.inquiries[i].ID == id {
			if patch.Message != nil {
				s.inquiries[i].Message = *patch.Message
			}
			if patch.Status != nil {
				s.inquiries[i].Status = *patch.Status
			}
			s.inquiries[i].UpdatedAt = time.Now().UTC()
			return s.inquiries[i], nil
		}
	}
	return Inquiry{}, ErrNotFound
}

// CreateTestDrive assigns identity, pending status, and timestamps.
func (s *Store) CreateTestDrive(testDrive TestDrive) TestDrive {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	testDrive.ID = uuid.New()
	testDrive.CreatedAt = now
	testDrive.UpdatedAt = now
	if testDrive.Notes != nil {
		notes := *testDrive.Notes
		testDrive.Notes = &notes
	}
	s.testDrives = append(s.testDrives, testDrive)
	return testDrive
}

// FindTestDrive searches the full backing collection.
func (s *Store) FindTestDrive(id uuid.UUID) (TestDrive, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, testDrive := range s.testDrives {
		if testDrive.ID == id {
			return testDrive, true
		}
	}
	return TestDrive{}, false
}

// UpdateTestDrive merges the patch and bumps UpdatedAt.
func (s *Store) UpdateTestDrive(id uuid.UUID, patch TestDrivePatch) (TestDrive, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.testDrives {
		if s.testDrives[i].ID == id {
			if patch.Date != nil {
				s.testDrives[i].Date = *patch.Date
			}
			if patch.Status != nil {
				s.testDrives[i].Status = *patch.Status
			}
			if patch.Notes != nil {
				notes := *patch.Notes
				s.testDrives[i].Notes = &notes
			}
			s.testDrives[i].UpdatedAt = time.Now().UTC()
			return s.testDrives[i], nil
		}
	}
	return TestDrive{}, ErrNotFound
}

// ToggleFavorite creates the marker when absent and removes it when present.
// At most one favorite exists per (user, car) pair.
func (s *Store) ToggleFavorite(carID, userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.favorites {
		if s.favorites[i].CarID == carID && s.favorites[i].UserID == userID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return false
		}
	}
	s.favorites = append(s.favorites, Favorite{
		ID:        uuid.New(),
		CarID:     carID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	})
	return true
}

// IsFavorite never fails; unknown pairs report false.
func (s *Store) IsFavorite(carID, userID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, favorite := range s.favorites {
		if favorite.CarID == carID && favorite.UserID == userID {
			return true
		}
	}
	return false
}

// ListFor returns the records owned by the user, in insertion order.
func (s *Store) ListFor(userID uuid.UUID) ([]Inquiry, []TestDrive, []Favorite) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inquiries := make([]Inquiry, 0)
	for _, inquiry := range s.inquiries {
		if inquiry.UserID == userID {
			inquiries = append(inquiries, inquiry)
		}
	}
	testDrives := make([]TestDrive, 0)
	for _, testDrive := range s.testDrives {
		if testDrive.UserID == userID {
			testDrives = append(testDrives, testDrive)
		}
	}
	favorites := make([]Favorite, 0)
	for _, favorite := range s.favorites {
		if favorite.UserID == userID {
			favorites = append(favorites, favorite)
		}
	}
	return inquiries, testDrives, favorites
}

// ListForDealer returns the inquiries and test drives addressed to a dealer.
func (s *Store) ListForDealer(dealerID uuid.UUID) ([]Inquiry, []TestDrive) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inquiries := make([]Inquiry, 0)
	for _, inquiry := range s.inquiries {
		if inquiry.DealerID == dealerID {
			inquiries = append(inquiries, inquiry)
		}
	}
	testDrives := make([]TestDrive, 0)
	for _, testDrive := range s.testDrives {
		if testDrive.DealerID == dealerID {
			testDrives = append(testDrives, testDrive)
		}
	}
	return inquiries, testDrives
}
