package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/drivelinehq/driveline-backend/api/responses"
	"github.com/drivelinehq/driveline-backend/api/validators"
	carsvc "github.com/drivelinehq/driveline-backend/internal/cars"
	"github.com/drivelinehq/driveline-backend/pkg/enums"
	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/drivelinehq/driveline-backend/pkg/logger"
)

type createCarRequest struct {
	Title        string   `json:"title" validate:"required,min=2,max=200"`
	Description  string   `json:"description" validate:"required"`
	Price        int64    `json:"price" validate:"required,min=0"`
	Images       []string `json:"images,omitempty"`
	Featured     bool     `json:"featured"`
	Type         string   `json:"type" validate:"required"`
	Manufacturer string   `json:"manufacturer" validate:"required"`
	Model        string   `json:"model" validate:"required"`
	Year         int      `json:"year" validate:"required,min=1900,max=2100"`
	Mileage      int      `json:"mileage" validate:"min=0"`
	Transmission string   `json:"transmission" validate:"required"`
	FuelType     string   `json:"fuel_type" validate:"required"`
	Color        string   `json:"color" validate:"required"`
	VIN          string   `json:"vin" validate:"required"`
	Status       *string  `json:"status,omitempty"`
}

type updateCarRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description  *string  `json:"description,omitempty"`
	Price        *int64   `json:"price,omitempty" validate:"omitempty,min=0"`
	Images       []string `json:"images,omitempty"`
	Featured     *bool    `json:"featured,omitempty"`
	Type         *string  `json:"type,omitempty"`
	Manufacturer *string  `json:"manufacturer,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Year         *int     `json:"year,omitempty" validate:"omitempty,min=1900,max=2100"`
	Mileage      *int     `json:"mileage,omitempty" validate:"omitempty,min=0"`
	Transmission *string  `json:"transmission,omitempty"`
	FuelType     *string  `json:"fuel_type,omitempty"`
	Color        *string  `json:"color,omitempty"`
	VIN          *string  `json:"vin,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

// DealerCreateCar adds a listing owned by the authenticated dealer.
func DealerCreateCar(svc carsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		dealerID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload createCarRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		car, err := svc.Create(r.Context(), dealerID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, car)
	}
}

// DealerUpdateCar patches a listing the authenticated dealer owns.
func DealerUpdateCar(svc carsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		dealerID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		carID, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "carId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid car id"))
			return
		}

		var payload updateCarRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patch, err := payload.toPatch()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		car, err := svc.Update(r.Context(), dealerID, carID, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, car)
	}
}

// DealerDeleteCar removes a listing the authenticated dealer owns.
func DealerDeleteCar(svc carsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		dealerID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		carID, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "carId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid car id"))
			return
		}

		if err := svc.Delete(r.Context(), dealerID, carID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

func (r createCarRequest) toCreateInput() (carsvc.CreateCarInput, error) {
	carType, err := enums.ParseCarType(strings.TrimSpace(r.Type))
	if err != nil {
		return carsvc.CreateCarInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid car type")
	}
	transmission, err := enums.ParseTransmission(strings.TrimSpace(r.Transmission))
	if err != nil {
		return carsvc.CreateCarInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transmission")
	}
	fuelType, err := enums.ParseFuelType(strings.TrimSpace(r.FuelType))
	if err != nil {
		return carsvc.CreateCarInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid fuel type")
	}

	var status enums.CarStatus
	if r.Status != nil {
		parsed, err := enums.ParseCarStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return carsvc.CreateCarInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		status = parsed
	}

	return carsvc.CreateCarInput{
		Title:        strings.TrimSpace(r.Title),
		Description:  r.Description,
		Price:        r.Price,
		Images:       r.Images,
		Featured:     r.Featured,
		Type:         carType,
		Manufacturer: strings.TrimSpace(r.Manufacturer),
		Model:        strings.TrimSpace(r.Model),
		Year:         r.Year,
		Mileage:      r.Mileage,
		Transmission: transmission,
		FuelType:     fuelType,
		Color:        strings.TrimSpace(r.Color),
		VIN:          strings.TrimSpace(r.VIN),
		Status:       status,
	}, nil
}

func (r updateCarRequest) toPatch() (carsvc.CarPatch, error) {
	patch := carsvc.CarPatch{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		Featured:     r.Featured,
		Manufacturer: r.Manufacturer,
		Model:        r.Model,
		Year:         r.Year,
		Mileage:      r.Mileage,
		Color:        r.Color,
		VIN:          r.VIN,
	}
	if r.Images != nil {
		patch.Images = &r.Images
	}

	if r.Type != nil {
		parsed, err := enums.ParseCarType(strings.TrimSpace(*r.Type))
		if err != nil {
			return carsvc.CarPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid car type")
		}
		patch.Type = &parsed
	}
	if r.Transmission != nil {
		parsed, err := enums.ParseTransmission(strings.TrimSpace(*r.Transmission))
		if err != nil {
			return carsvc.CarPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transmission")
		}
		patch.Transmission = &parsed
	}
	if r.FuelType != nil {
		parsed, err := enums.ParseFuelType(strings.TrimSpace(*r.FuelType))
		if err != nil {
			return carsvc.CarPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid fuel type")
		}
		patch.FuelType = &parsed
	}
	if r.Status != nil {
		parsed, err := enums.ParseCarStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return carsvc.CarPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		patch.Status = &parsed
	}

	return patch, nil
}
