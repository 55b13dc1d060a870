package engagement

import (
	"context"
	"strings"
	"time"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/google/uuid"
)

// ServiceParams groups dependencies for the engagement service.
type ServiceParams struct {
	Store *Store
}

// Service exposes business rules for inquiries, test drives, and favorites.
// Every operation takes the caller-supplied current user; the service does
// not authenticate.
type Service interface {
	CreateInquiry(ctx context.Context, userID, carID, dealerID uuid.UUID, message string) (InquiryDTO, error)
	UpdateInquiry(ctx context.Context, userID, inquiryID uuid.UUID, patch InquiryPatch) (InquiryDTO, error)
	ScheduleTestDrive(ctx context.Context, userID, carID, dealerID uuid.UUID, date time.Time, notes *string) (TestDriveDTO, error)
	UpdateTestDrive(ctx context.Context, userID, testDriveID uuid.UUID, patch TestDrivePatch) (TestDriveDTO, error)
	ToggleFavorite(ctx context.Context, userID, carID uuid.UUID) (bool, error)
	IsFavorite(ctx context.Context, userID, carID uuid.UUID) bool
	ListFor(ctx context.Context, userID uuid.UUID) (UserEngagementDTO, error)
}

type service struct {
	store *Store
}

// NewService builds an engagement service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "engagement store is required")
	}
	return &service{store: params.Store}, nil
}

// CreateInquiry records a pending inquiry for the current user.
func (s *service) CreateInquiry(ctx context.Context, userID, carID, dealerID uuid.UUID, message string) (InquiryDTO, error) {
	if userID == uuid.Nil {
		return InquiryDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "you must be logged in to create an inquiry")
	}
	if strings.TrimSpace(message) == "" {
		return InquiryDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "message is required")
	}
	inquiry := s.store.CreateInquiry(Inquiry{
		CarID:    carID,
		UserID:   userID,
		DealerID: dealerID,
		Message:  message,
		Status:   enums.InquiryStatusPending,
	})
	return toInquiryDTO(inquiry), nil
}

// UpdateInquiry searches the full backing collection; the owner or the
// addressed dealer may mutate, anyone else is rejected.
func (s *service) UpdateInquiry(ctx context.Context, userID, inquiryID uuid.UUID, patch InquiryPatch) (InquiryDTO, error) {
	if userID == uuid.Nil {
		return InquiryDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "you must be logged in to update an inquiry")
	}
	existing, ok := s.store.FindInquiry(inquiryID)
	if !ok {
		return InquiryDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "inquiry not found")
	}
	if existing.UserID != userID && existing.DealerID != userID {
		return InquiryDTO{}, pkgerrors.New(pkgerrors.CodeForbidden, "inquiry belongs to another user")
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return InquiryDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}
	updated, err := s.store.UpdateInquiry(inquiryID, patch)
	if err != nil {
		return InquiryDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "inquiry not found")
	}
	return toInquiryDTO(updated), nil
}

// ScheduleTestDrive records a pending appointment. Any date is accepted.
func (s *service) ScheduleTestDrive(ctx context.Context, userID, carID, dealerID uuid.UUID, date time.Time, notes *string) (TestDriveDTO, error) {
	if userID == uuid.Nil {
		return TestDriveDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "you must be logged in to schedule a test drive")
	}
	testDrive := s.store.CreateTestDrive(TestDrive{
		CarID:    carID,
		UserID:   userID,
		DealerID: dealerID,
		Date:     date,
		Status:   enums.TestDriveStatusPending,
		Notes:    notes,
	})
	return toTestDriveDTO(testDrive), nil
}

// UpdateTestDrive mirrors UpdateInquiry's ownership policy.
func (s *service) UpdateTestDrive(ctx context.Context, userID, testDriveID uuid.UUID, patch TestDrivePatch) (TestDriveDTO, error) {
	if userID == uuid.Nil {
		return TestDriveDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "you must be logged in to update a test drive")
	}
	existing, ok := s.store.FindTestDrive(testDriveID)
	if !ok {
		return TestDriveDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "test drive not found")
	}
	if existing.UserID != userID && existing.DealerID != userID {
		return TestDriveDTO{}, pkgerrors.New(pkgerrors.CodeForbidden, "test drive belongs to another user")
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return TestDriveDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}
	updated, err := s.store.UpdateTestDrive(testDriveID, patch)
	if err != nil {
		return TestDriveDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "test drive not found")
	}
	return toTestDriveDTO(updated), nil
}

// ToggleFavorite reports true when the marker was created, false when removed.
func (s *service) ToggleFavorite(ctx context.Context, userID, carID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, pkgerrors.New(pkgerrors.CodeUnauthorized, "you must be logged in to favorite a car")
	}
	return s.store.ToggleFavorite(carID, userID), nil
}

// IsFavorite is a pure lookup; it never fails.
func (s *service) IsFavorite(ctx context.Context, userID, carID uuid.UUID) bool {
	if userID == uuid.Nil {
		return false
	}
	return s.store.IsFavorite(carID, userID)
}

// ListFor returns the caller's records only.
func (s *service) ListFor(ctx context.Context, userID uuid.UUID) (UserEngagementDTO, error) {
	if userID == uuid.Nil {
		return UserEngagementDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "you must be logged in to list engagement")
	}
	inquiries, testDrives, favorites := s.store.ListFor(userID)

	dto := UserEngagementDTO{
		Inquiries:  make([]InquiryDTO, 0, len(inquiries)),
		TestDrives: make([]TestDriveDTO, 0, len(testDrives)),
		Favorites:  make([]FavoriteDTO, 0, len(favorites)),
	}
	for _, inquiry := range inquiries {
		dto.Inquiries = append(dto.Inquiries, toInquiryDTO(inquiry))
	}
	for _, testDrive := range testDrives {
		dto.TestDrives = append(dto.TestDrives, toTestDriveDTO(testDrive))
	}
	for _, favorite := range favorites {
		dto.Favorites = append(dto.Favorites, toFavoriteDTO(favorite))
	}
	return dto, nil
}
