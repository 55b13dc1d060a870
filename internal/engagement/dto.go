package engagement

import (
	"time"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	"github.com/google/uuid"
)

// InquiryDTO is the wire representation of an inquiry.
type InquiryDTO struct {
	ID        uuid.UUID           `json:"id"`
	CarID     uuid.UUID           `json:"car_id"`
	UserID    uuid.UUID           `json:"user_id"`
	DealerID  uuid.UUID           `json:"dealer_id"`
	Message   string              `json:"message"`
	Status    enums.InquiryStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// TestDriveDTO is the wire representation of a test drive.
type TestDriveDTO struct {
	ID        uuid.UUID             `json:"id"`
	CarID     uuid.UUID             `json:"car_id"`
	UserID    uuid.UUID             `json:"user_id"`
	DealerID  uuid.UUID             `json:"dealer_id"`
	Date      time.Time             `json:"date"`
	Status    enums.TestDriveStatus `json:"status"`
	Notes     *string               `json:"notes,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// FavoriteDTO is the wire representation of a favorite marker.
type FavoriteDTO struct {
	ID        uuid.UUID `json:"id"`
	CarID     uuid.UUID `json:"car_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// UserEngagementDTO groups a user's records for the load-time scoping view.
type UserEngagementDTO struct {
	Inquiries  []InquiryDTO   `json:"inquiries"`
	TestDrives []TestDriveDTO `json:"test_drives"`
	Favorites  []FavoriteDTO  `json:"favorites"`
}

func toInquiryDTO(inquiry Inquiry) InquiryDTO {
	return InquiryDTO{
		ID:        inquiry.ID,
		CarID:     inquiry.CarID,
		UserID:    inquiry.UserID,
		DealerID:  inquiry.DealerID,
		Message:   inquiry.Message,
		Status:    inquiry.Status,
		CreatedAt: inquiry.CreatedAt,
		UpdatedAt: inquiry.UpdatedAt,
	}
}

func toTestDriveDTO(testDrive TestDrive) TestDriveDTO {
	// Notes is copied by value so the DTO never aliases store state.
	var notes *string
	if testDrive.Notes != nil {
		value := *testDrive.Notes
		notes = &value
	}
	return TestDriveDTO{
		ID:        testDrive.ID,
		CarID:     testDrive.CarID,
		UserID:    testDrive.UserID,
		DealerID:  testDrive.DealerID,
		Date:      testDrive.Date,
		Status:    testDrive.Status,
		Notes:     notes,
		CreatedAt: testDrive.CreatedAt,
		UpdatedAt: testDrive.UpdatedAt,
	}
}

func toFavoriteDTO(favorite Favorite) FavoriteDTO {
	return FavoriteDTO{
		ID:        favorite.ID,
		CarID:     favorite.CarID,
		UserID:    favorite.UserID,
		CreatedAt: favorite.CreatedAt,
	}
}
