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

// CarsList returns the full catalog in insertion order.
func CarsList(svc carsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.List(r.Context()))
	}
}

// CarsFeatured returns the promoted subset of the catalog.
func CarsFeatured(svc carsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Featured(r.Context()))
	}
}

// CarsSearch filters the catalog by the query string parameters. Absent
// parameters impose no constraint.
func CarsSearch(svc carsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		filters, err := parseCarFilters(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Search(r.Context(), filters))
	}
}

// CarsDetail returns a single listing by id.
func CarsDetail(svc carsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		carID, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "carId")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid car id"))
			return
		}

		car, err := svc.Get(r.Context(), carID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, car)
	}
}

func parseCarFilters(r *http.Request) (carsvc.Filters, error) {
	filters := carsvc.Filters{
		SearchTerm:   strings.TrimSpace(r.URL.Query().Get("search_term")),
		Manufacturer: validators.ParseQueryList(r, "manufacturer"),
	}

	priceMin, err := validators.ParseQueryOptionalInt(r, "price_min")
	if err != nil {
		return carsvc.Filters{}, err
	}
	if priceMin != nil {
		value := int64(*priceMin)
		filters.PriceMin = &value
	}
	priceMax, err := validators.ParseQueryOptionalInt(r, "price_max")
	if err != nil {
		return carsvc.Filters{}, err
	}
	if priceMax != nil {
		value := int64(*priceMax)
		filters.PriceMax = &value
	}

	if filters.YearMin, err = validators.ParseQueryOptionalInt(r, "year_min"); err != nil {
		return carsvc.Filters{}, err
	}
	if filters.YearMax, err = validators.ParseQueryOptionalInt(r, "year_max"); err != nil {
		return carsvc.Filters{}, err
	}
	if filters.MileageMax, err = validators.ParseQueryOptionalInt(r, "mileage_max"); err != nil {
		return carsvc.Filters{}, err
	}

	for _, raw := range validators.ParseQueryList(r, "type") {
		parsed, err := enums.ParseCarType(raw)
		if err != nil {
			return carsvc.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid car type")
		}
		filters.Types = append(filters.Types, parsed)
	}
	for _, raw := range validators.ParseQueryList(r, "transmission") {
		parsed, err := enums.ParseTransmission(raw)
		if err != nil {
			return carsvc.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transmission")
		}
		filters.Transmission = append(filters.Transmission, parsed)
	}
	for _, raw := range validators.ParseQueryList(r, "fuel_type") {
		parsed, err := enums.ParseFuelType(raw)
		if err != nil {
			return carsvc.Filters{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid fuel type")
		}
		filters.FuelType = append(filters.FuelType, parsed)
	}

	return filters, nil
}
