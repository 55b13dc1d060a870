package enums

import "fmt"

// CarType represents the canonical body styles supported by the catalog.
type CarType string

const (
	CarTypeSedan       CarType = "sedan"
	CarTypeSUV         CarType = "suv"
	CarTypeSports      CarType = "sports"
	CarTypeCoupe       CarType = "coupe"
	CarTypeConvertible CarType = "convertible"
	CarTypeTruck       CarType = "truck"
	CarTypeWagon       CarType = "wagon"
	CarTypeVan         CarType = "van"
	CarTypeHatchback   CarType = "hatchback"
)

var validCarTypes = []CarType{
	CarTypeSedan,
	CarTypeSUV,
	CarTypeSports,
	CarTypeCoupe,
	CarTypeConvertible,
	CarTypeTruck,
	CarTypeWagon,
	CarTypeVan,
	CarTypeHatchback,
}

// String implements fmt.Stringer.
func (c CarType) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CarType.
func (c CarType) IsValid() bool {
	for _, candidate := range validCarTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCarType converts raw input into a CarType.
func ParseCarType(value string) (CarType, error) {
	for _, candidate := range validCarTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid car type %q", value)
}

// Transmission represents the supported gearbox kinds.
type Transmission string

const (
	TransmissionAutomatic     Transmission = "automatic"
	TransmissionManual        Transmission = "manual"
	TransmissionSemiAutomatic Transmission = "semi-automatic"
)

var validTransmissions = []Transmission{
	TransmissionAutomatic,
	TransmissionManual,
	TransmissionSemiAutomatic,
}

// String implements fmt.Stringer.
func (t Transmission) String() string {
	return string(t)
}

// IsValid reports whether the value is a known Transmission.
func (t Transmission) IsValid() bool {
	for _, candidate := range validTransmissions {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTransmission converts raw input into a Transmission.
func ParseTransmission(value string) (Transmission, error) {
	for _, candidate := range validTransmissions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transmission %q", value)
}

// FuelType represents the supported fuel kinds.
type FuelType string

const (
	FuelTypePetrol   FuelType = "petrol"
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeElectric FuelType = "electric"
	FuelTypeHybrid   FuelType = "hybrid"
	FuelTypeOther    FuelType = "other"
)

var validFuelTypes = []FuelType{
	FuelTypePetrol,
	FuelTypeDiesel,
	FuelTypeElectric,
	FuelTypeHybrid,
	FuelTypeOther,
}

// String implements fmt.Stringer.
func (f FuelType) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FuelType.
func (f FuelType) IsValid() bool {
	for _, candidate := range validFuelTypes {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFuelType converts raw input into a FuelType.
func ParseFuelType(value string) (FuelType, error) {
	for _, candidate := range validFuelTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid fuel type %q", value)
}

// CarStatus represents the sale state of a listing.
type CarStatus string

const (
	CarStatusAvailable CarStatus = "available"
	CarStatusReserved  CarStatus = "reserved"
	CarStatusSold      CarStatus = "sold"
)

var validCarStatuses = []CarStatus{
	CarStatusAvailable,
	CarStatusReserved,
	CarStatusSold,
}

// String implements fmt.Stringer.
func (s CarStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CarStatus.
func (s CarStatus) IsValid() bool {
	for _, candidate := range validCarStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCarStatus converts raw input into a CarStatus.
func ParseCarStatus(value string) (CarStatus, error) {
	for _, candidate := range validCarStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid car status %q", value)
}
