package engagement

import (
	"time"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	"github.com/google/uuid"
)

// SeedRecords returns the demo engagement data. carIDs must be the seeded
// inventory in insertion order; fewer than four listings yields an empty seed.
func SeedRecords(customerID, dealerOne, dealerTwo uuid.UUID, carIDs []uuid.UUID) StoreSeed {
	if len(carIDs) < 4 {
		return StoreSeed{}
	}

	notes := "Please bring your driver's license"
	return StoreSeed{
		Inquiries: []Inquiry{
			{
				ID:        uuid.New(),
				CarID:     carIDs[0],
				UserID:    customerID,
				DealerID:  dealerOne,
				Message:   "I am interested in this car. Is it still available?",
				Status:    enums.InquiryStatusPending,
				CreatedAt: seedDate(2023, time.June, 25),
				UpdatedAt: seedDate(2023, time.June, 25),
			},
			{
				ID:        uuid.New(),
				CarID:     carIDs[2],
				UserID:    customerID,
				DealerID:  dealerOne,
				Message:   "Can I get more information about the features?",
				Status:    enums.InquiryStatusReplied,
				CreatedAt: seedDate(2023, time.June, 20),
				UpdatedAt: seedDate(2023, time.June, 21),
			},
		},
		TestDrives: []TestDrive{
			{
				ID:        uuid.New(),
				CarID:     carIDs[1],
				UserID:    customerID,
				DealerID:  dealerTwo,
				Date:      time.Date(2023, time.July, 5, 10, 0, 0, 0, time.UTC),
				Status:    enums.TestDriveStatusConfirmed,
				Notes:     &notes,
				CreatedAt: seedDate(2023, time.June, 28),
				UpdatedAt: seedDate(2023, time.June, 29),
			},
		},
		Favorites: []Favorite{
			{
				ID:        uuid.New(),
				CarID:     carIDs[0],
				UserID:    customerID,
				CreatedAt: seedDate(2023, time.June, 20),
			},
			{
				ID:        uuid.New(),
				CarID:     carIDs[3],
				UserID:    customerID,
				CreatedAt: seedDate(2023, time.June, 22),
			},
		},
	}
}

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
