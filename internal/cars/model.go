package cars

import (
	"time"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	"github.com/google/uuid"
)

// Car is a vehicle listing owned by a dealer.
type Car struct {
	ID           uuid.UUID
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
	DealerID     uuid.UUID
	Status       enums.CarStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CarPatch carries the mutable fields of a listing. Nil fields are left untouched.
type CarPatch struct {
	Title        *string
	Description  *string
	Price        *int64
	Images       *[]string
	Featured     *bool
	Type         *enums.CarType
	Manufacturer *string
	Model        *string
	Year         *int
	Mileage      *int
	Transmission *enums.Transmission
	FuelType     *enums.FuelType
	Color        *string
	VIN          *string
	Status       *enums.CarStatus
}

func (p CarPatch) apply(car *Car) {
	if p.Title != nil {
		car.Title = *p.Title
	}
	if p.Description != nil {
		car.Description = *p.Description
	}
	if p.Price != nil {
		car.Price = *p.Price
	}
	if p.Images != nil {
		car.Images = append([]string(nil), (*p.Images)...)
	}
	if p.Featured != nil {
		car.Featured = *p.Featured
	}
	if p.Type != nil {
		car.Type = *p.Type
	}
	if p.Manufacturer != nil {
		car.Manufacturer = *p.Manufacturer
	}
	if p.Model != nil {
		car.Model = *p.Model
	}
	if p.Year != nil {
		car.Year = *p.Year
	}
	if p.Mileage != nil {
		car.Mileage = *p.Mileage
	}
	if p.Transmission != nil {
		car.Transmission = *p.Transmission
	}
	if p.FuelType != nil {
		car.FuelType = *p.FuelType
	}
	if p.Color != nil {
		car.Color = *p.Color
	}
	if p.VIN != nil {
		car.VIN = *p.VIN
	}
	if p.Status != nil {
		car.Status = *p.Status
	}
}
