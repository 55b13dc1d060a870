package cars

import (
	"context"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/google/uuid"
)

// ServiceParams groups dependencies for the listing service.
type ServiceParams struct {
	Store *Store
}

// Service exposes business rules for vehicle listings.
type Service interface {
	List(ctx context.Context) []CarDTO
	Featured(ctx context.Context) []CarDTO
	Get(ctx context.Context, carID uuid.UUID) (CarDTO, error)
	Search(ctx context.Context, filters Filters) []CarDTO
	Create(ctx context.Context, dealerID uuid.UUID, input CreateCarInput) (CarDTO, error)
	Update(ctx context.Context, dealerID, carID uuid.UUID, patch CarPatch) (CarDTO, error)
	Delete(ctx context.Context, dealerID, carID uuid.UUID) error
}

type service struct {
	store *Store
}

// NewService builds a listing service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "car store is required")
	}
	return &service{store: params.Store}, nil
}

// List returns every listing in insertion order.
func (s *service) List(ctx context.Context) []CarDTO {
	return toDTOs(s.store.List())
}

// Featured returns the promoted subset.
func (s *service) Featured(ctx context.Context) []CarDTO {
	return toDTOs(s.store.Featured())
}

// Get returns a single listing or CodeNotFound.
func (s *service) Get(ctx context.Context, carID uuid.UUID) (CarDTO, error) {
	car, ok := s.store.Get(carID)
	if !ok {
		return CarDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "car not found")
	}
	return toDTO(car), nil
}

// Search applies the filter specification over the current collection.
func (s *service) Search(ctx context.Context, filters Filters) []CarDTO {
	return toDTOs(s.store.Search(filters))
}

// Create adds a listing owned by the calling dealer.
func (s *service) Create(ctx context.Context, dealerID uuid.UUID, input CreateCarInput) (CarDTO, error) {
	if dealerID == uuid.Nil {
		return CarDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "dealer id is required")
	}
	status := input.Status
	if status == "" {
		status = enums.CarStatusAvailable
	}
	if !status.IsValid() {
		return CarDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}
	car := s.store.Add(Car{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Images:       append([]string(nil), input.Images...),
		Featured:     input.Featured,
		Type:         input.Type,
		Manufacturer: input.Manufacturer,
		Model:        input.Model,
		Year:         input.Year,
		Mileage:      input.Mileage,
		Transmission: input.Transmission,
		FuelType:     input.FuelType,
		Color:        input.Color,
		VIN:          input.VIN,
		DealerID:     dealerID,
		Status:       status,
	})
	return toDTO(car), nil
}

// Update patches a listing after verifying the caller owns it.
func (s *service) Update(ctx context.Context, dealerID, carID uuid.UUID, patch CarPatch) (CarDTO, error) {
	if err := s.ensureOwnership(dealerID, carID); err != nil {
		return CarDTO{}, err
	}
	car, err := s.store.Update(carID, patch)
	if err != nil {
		return CarDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "car not found")
	}
	return toDTO(car), nil
}

// Delete removes a listing after verifying the caller owns it.
func (s *service) Delete(ctx context.Context, dealerID, carID uuid.UUID) error {
	if err := s.ensureOwnership(dealerID, carID); err != nil {
		return err
	}
	if err := s.store.Remove(carID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "car not found")
	}
	return nil
}

func (s *service) ensureOwnership(dealerID, carID uuid.UUID) error {
	if dealerID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "dealer id is required")
	}
	car, ok := s.store.Get(carID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "car not found")
	}
	if car.DealerID != dealerID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "listing belongs to another dealer")
	}
	return nil
}
