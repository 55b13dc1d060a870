package cars

import (
	"strings"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
)

// Filters is the search specification. Zero-valued fields impose no constraint.
type Filters struct {
	SearchTerm   string
	PriceMin     *int64
	PriceMax     *int64
	Types        []enums.CarType
	Manufacturer []string
	YearMin      *int
	YearMax      *int
	MileageMax   *int
	Transmission []enums.Transmission
	FuelType     []enums.FuelType
}

// Apply returns the listings matching every supplied constraint, preserving
// the relative order of the input. The input slice is never mutated.
func Apply(listings []Car, filters Filters) []Car {
	matched := make([]Car, 0, len(listings))
	for _, car := range listings {
		if matches(car, filters) {
			matched = append(matched, car)
		}
	}
	return matched
}

func matches(car Car, filters Filters) bool {
	if term := strings.ToLower(strings.TrimSpace(filters.SearchTerm)); term != "" {
		if !strings.Contains(strings.ToLower(car.Title), term) &&
			!strings.Contains(strings.ToLower(car.Description), term) &&
			!strings.Contains(strings.ToLower(car.Manufacturer), term) &&
			!strings.Contains(strings.ToLower(car.Model), term) {
			return false
		}
	}
	if filters.PriceMin != nil && car.Price < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && car.Price > *filters.PriceMax {
		return false
	}
	if len(filters.Types) > 0 && !containsType(filters.Types, car.Type) {
		return false
	}
	// Manufacturer membership is exact and case-sensitive.
	if len(filters.Manufacturer) > 0 && !containsString(filters.Manufacturer, car.Manufacturer) {
		return false
	}
	if filters.YearMin != nil && car.Year < *filters.YearMin {
		return false
	}
	if filters.YearMax != nil && car.Year > *filters.YearMax {
		return false
	}
	if filters.MileageMax != nil && car.Mileage > *filters.MileageMax {
		return false
	}
	if len(filters.Transmission) > 0 && !containsTransmission(filters.Transmission, car.Transmission) {
		return false
	}
	if len(filters.FuelType) > 0 && !containsFuelType(filters.FuelType, car.FuelType) {
		return false
	}
	return true
}

func containsType(set []enums.CarType, value enums.CarType) bool {
	for _, candidate := range set {
		if candidate == value {
			return true
		}
	}
	return false
}

func containsString(set []string, value string) bool {
	for _, candidate := range set {
		if candidate == value {
			return true
		}
	}
	return false
}

func containsTransmission(set []enums.Transmission, value enums.Transmission) bool {
	for _, candidate := range set {
		if candidate == value {
			return true
		}
	}
	return false
}

func containsFuelType(set []enums.FuelType, value enums.FuelType) bool {
	for _, candidate := range set {
		if candidate == value {
			return true
		}
	}
	return false
}
