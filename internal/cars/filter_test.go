package cars

import (
	"testing"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	"github.com/google/uuid"
)

func seededInventory() []Car {
	return SeedListings(uuid.New(), uuid.New())
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func TestEmptyFilterIsIdentity(t *testing.T) {
	inventory := seededInventory()
	result := Apply(inventory, Filters{})
	if len(result) != len(inventory) {
		t.Fatalf("expected %d listings, got %d", len(inventory), len(result))
	}
	for i := range result {
		if result[i].ID != inventory[i].ID {
			t.Fatalf("order changed at position %d", i)
		}
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	inventory := seededInventory()
	spec := Filters{PriceMax: int64Ptr(70000), Types: []enums.CarType{enums.CarTypeSedan}}

	once := Apply(inventory, spec)
	twice := Apply(once, spec)
	if len(once) != len(twice) {
		t.Fatalf("expected identical result, got %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatal("idempotency violated")
		}
	}
}

func TestPriceBoundsExcludeAndInclude(t *testing.T) {
	inventory := seededInventory()

	under60k := Apply(inventory, Filters{PriceMax: int64Ptr(60000)})
	for _, car := range under60k {
		if car.Price > 60000 {
			t.Fatalf("price %d exceeds cap", car.Price)
		}
		if car.Manufacturer == "BMW" {
			t.Fatal("the 65000 BMW must be excluded by priceMax 60000")
		}
	}

	bmwOnly := Apply(inventory, Filters{Manufacturer: []string{"BMW"}})
	if len(bmwOnly) != 1 || bmwOnly[0].Manufacturer != "BMW" {
		t.Fatalf("expected exactly the BMW, got %d listings", len(bmwOnly))
	}
}

func TestManufacturerMatchIsCaseSensitive(t *testing.T) {
	inventory := seededInventory()
	if got := Apply(inventory, Filters{Manufacturer: []string{"bmw"}}); len(got) != 0 {
		t.Fatalf("lowercase manufacturer must not match, got %d", len(got))
	}
}

func TestSearchTermMatchesAnyTextField(t *testing.T) {
	inventory := seededInventory()

	byModel := Apply(inventory, Filters{SearchTerm: "rav4"})
	if len(byModel) != 1 || byModel[0].Model != "RAV4" {
		t.Fatalf("expected the RAV4 via case-insensitive model match, got %d", len(byModel))
	}

	byDescription := Apply(inventory, Filters{SearchTerm: "autopilot"})
	if len(byDescription) != 1 || byDescription[0].Manufacturer != "Tesla" {
		t.Fatalf("expected the Tesla via description match, got %d", len(byDescription))
	}

	if got := Apply(inventory, Filters{SearchTerm: "zeppelin"}); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestSetFieldsAreOrWithinAndAcross(t *testing.T) {
	inventory := seededInventory()

	suvOrSports := Apply(inventory, Filters{Types: []enums.CarType{enums.CarTypeSUV, enums.CarTypeSports}})
	for _, car := range suvOrSports {
		if car.Type != enums.CarTypeSUV && car.Type != enums.CarTypeSports {
			t.Fatalf("unexpected type %s", car.Type)
		}
	}
	if len(suvOrSports) != 4 {
		t.Fatalf("expected 4 suv/sports listings, got %d", len(suvOrSports))
	}

	dieselSUVs := Apply(inventory, Filters{
		Types:    []enums.CarType{enums.CarTypeSUV},
		FuelType: []enums.FuelType{enums.FuelTypeDiesel},
	})
	for _, car := range dieselSUVs {
		if car.Type != enums.CarTypeSUV || car.FuelType != enums.FuelTypeDiesel {
			t.Fatalf("AND across fields violated: %+v", car)
		}
	}
	if len(dieselSUVs) != 2 {
		t.Fatalf("expected 2 diesel SUVs, got %d", len(dieselSUVs))
	}
}

func TestYearAndMileageBoundsAreInclusive(t *testing.T) {
	inventory := seededInventory()

	from2023 := Apply(inventory, Filters{YearMin: intPtr(2023)})
	for _, car := range from2023 {
		if car.Year < 2023 {
			t.Fatalf("year %d below bound", car.Year)
		}
	}

	lowMileage := Apply(inventory, Filters{MileageMax: intPtr(5000)})
	for _, car := range lowMileage {
		if car.Mileage > 5000 {
			t.Fatalf("mileage %d above cap", car.Mileage)
		}
	}
	// 5000 itself passes the inclusive cap.
	found := false
	for _, car := range lowMileage {
		if car.Mileage == 5000 {
			found = true
		}
	}
	if !found {
		t.Fatal("inclusive bound must admit the exact value")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	inventory := seededInventory()
	before := make([]Car, len(inventory))
	copy(before, inventory)

	Apply(inventory, Filters{PriceMax: int64Ptr(1)})

	for i := range inventory {
		if inventory[i].ID != before[i].ID {
			t.Fatal("input slice mutated")
		}
	}
}
