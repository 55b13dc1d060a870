package engagement

import (
	"time"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	"github.com/google/uuid"
)

// Inquiry is a customer question about a listing. CarID and DealerID are not
// validated against other stores; dangling references are tolerated.
type Inquiry struct {
	ID        uuid.UUID
	CarID     uuid.UUID
	UserID    uuid.UUID
	DealerID  uuid.UUID
	Message   string
	Status    enums.InquiryStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TestDrive is a scheduled appointment. The store accepts any date; future
// checks live with the caller.
type TestDrive struct {
	ID        uuid.UUID
	CarID     uuid.UUID
	UserID    uuid.UUID
	DealerID  uuid.UUID
	Date      time.Time
	Status    enums.TestDriveStatus
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Favorite marks a (user, car) pair. Existence is the signal; there is no
// update operation.
type Favorite struct {
	ID        uuid.UUID
	CarID     uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

// InquiryPatch carries the mutable inquiry fields.
type InquiryPatch struct {
	Message *string
	Status  *enums.InquiryStatus
}

// TestDrivePatch carries the mutable test drive fields.
type TestDrivePatch struct {
	Date   *time.Time
	Status *enums.TestDriveStatus
	Notes  *string
}
