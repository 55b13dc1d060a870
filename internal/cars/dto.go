package cars

import (
	"time"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	"github.com/google/uuid"
)

// CarDTO is the wire representation of a listing.
type CarDTO struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Price        int64              `json:"price"`
	Images       []string           `json:"images"`
	Featured     bool               `json:"featured"`
	Type         enums.CarType      `json:"type"`
	Manufacturer string             `json:"manufacturer"`
	Model        string             `json:"model"`
	Year         int                `json:"year"`
	Mileage      int                `json:"mileage"`
	Transmission enums.Transmission `json:"transmission"`
	FuelType     enums.FuelType     `json:"fuel_type"`
	Color        string             `json:"color"`
	VIN          string             `json:"vin"`
	DealerID     uuid.UUID          `json:"dealer_id"`
	Status       enums.CarStatus    `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// CreateCarInput carries the caller-supplied fields for a new listing.
// Identity, ownership, and timestamps are assigned by the service.
type CreateCarInput struct {
	Title        string
	Description  string
	Price        int64
	Images       []string
	Featured     bool
	Type         enums.CarType
	Manufacturer string
	Model        string
	Year         int
	Mileage      int
	Transmission enums.Transmission
	FuelType     enums.FuelType
	Color        string
	VIN          string
	Status       enums.CarStatus
}

func toDTO(car Car) CarDTO {
	images := car.Images
	if images == nil {
		images = []string{}
	}
	return CarDTO{
		ID:           car.ID,
		Title:        car.Title,
		Description:  car.Description,
		Price:        car.Price,
		Images:       images,
		Featured:     car.Featured,
		Type:         car.Type,
		Manufacturer: car.Manufacturer,
		Model:        car.Model,
		Year:         car.Year,
		Mileage:      car.Mileage,
		Transmission: car.Transmission,
		FuelType:     car.FuelType,
		Color:        car.Color,
		VIN:          car.VIN,
		DealerID:     car.DealerID,
		Status:       car.Status,
		CreatedAt:    car.CreatedAt,
		UpdatedAt:    car.UpdatedAt,
	}
}

func toDTOs(listings []Car) []CarDTO {
	dtos := make([]CarDTO, 0, len(listings))
	for _, car := range listings {
		dtos = append(dtos, toDTO(car))
	}
	return dtos
}
