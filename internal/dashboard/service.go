package dashboard

import (
	"context"

	"github.com/drivelinehq/driveline-backend/internal/cars"
	"github.com/drivelinehq/driveline-backend/internal/engagement"
	"github.com/drivelinehq/driveline-backend/pkg/enums"
	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatsDTO aggregates a dealer's inventory and engagement view.
type StatsDTO struct {
	TotalListings      int             `json:"total_listings"`
	AvailableListings  int             `json:"available_listings"`
	ReservedListings   int             `json:"reserved_listings"`
	SoldListings       int             `json:"sold_listings"`
	FeaturedListings   int             `json:"featured_listings"`
	InventoryValue     decimal.Decimal `json:"inventory_value"`
	AverageAskingPrice decimal.Decimal `json:"average_asking_price"`
	PendingInquiries   int             `json:"pending_inquiries"`
	PendingTestDrives  int             `json:"pending_test_drives"`
	UpcomingTestDrives int             `json:"upcoming_test_drives"`
}

// ServiceParams groups dependencies for the dashboard service.
type ServiceParams struct {
	Cars       *cars.Store
	Engagement *engagement.Store
}

// Service computes dealer dashboard aggregates.
type Service interface {
	StatsFor(ctx context.Context, dealerID uuid.UUID) (StatsDTO, error)
}

type service struct {
	cars       *cars.Store
	engagement *engagement.Store
}

// NewService builds a dashboard service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Cars == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "car store is required")
	}
	if params.Engagement == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "engagement store is required")
	}
	return &service{cars: params.Cars, engagement: params.Engagement}, nil
}

// StatsFor joins the two stores on dealer id. Money math runs in decimal;
// the average is rounded to two places.
func (s *service) StatsFor(ctx context.Context, dealerID uuid.UUID) (StatsDTO, error) {
	if dealerID == uuid.Nil {
		return StatsDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "dealer id is required")
	}

	stats := StatsDTO{
		InventoryValue:     decimal.Zero,
		AverageAskingPrice: decimal.Zero,
	}

	unsold := 0
	for _, car := range s.cars.List() {
		if car.DealerID != dealerID {
			continue
		}
		stats.TotalListings++
		if car.Featured {
			stats.FeaturedListings++
		}
		switch car.Status {
		case enums.CarStatusAvailable:
			stats.AvailableListings++
		case enums.CarStatusReserved:
			stats.ReservedListings++
		case enums.CarStatusSold:
			stats.SoldListings++
		}
		if car.Status != enums.CarStatusSold {
			stats.InventoryValue = stats.InventoryValue.Add(decimal.NewFromInt(car.Price))
			unsold++
		}
	}
	if unsold > 0 {
		stats.AverageAskingPrice = stats.InventoryValue.DivRound(decimal.NewFromInt(int64(unsold)), 2)
	}

	inquiries, testDrives := s.engagement.ListForDealer(dealerID)
	for _, inquiry := range inquiries {
		if inquiry.Status == enums.InquiryStatusPending {
			stats.PendingInquiries++
		}
	}
	for _, testDrive := range testDrives {
		switch testDrive.Status {
		case enums.TestDriveStatusPending:
			stats.PendingTestDrives++
			stats.UpcomingTestDrives++
		case enums.TestDriveStatusConfirmed:
			stats.UpcomingTestDrives++
		}
	}

	return stats, nil
}
