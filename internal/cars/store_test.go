package cars

import (
	"errors"
	"testing"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	"github.com/google/uuid"
)

func testListing(manufacturer string, price int64, featured bool) Car {
	return Car{
		Title:        "Test " + manufacturer,
		Description:  "test listing",
		Price:        price,
		Featured:     featured,
		Type:         enums.CarTypeSedan,
		Manufacturer: manufacturer,
		Model:        "X",
		Year:         2023,
		Mileage:      1000,
		Transmission: enums.TransmissionAutomatic,
		FuelType:     enums.FuelTypePetrol,
		DealerID:     uuid.New(),
		Status:       enums.CarStatusAvailable,
	}
}

func TestAddAssignsIdentityAndTimestamps(t *testing.T) {
	store := NewStore(nil)

	added := store.Add(testListing("BMW", 65000, true))
	if added.ID == uuid.Nil {
		t.Fatal("expected assigned id")
	}
	if added.CreatedAt.IsZero() || !added.UpdatedAt.Equal(added.CreatedAt) {
		t.Fatalf("expected created_at == updated_at, got %v / %v", added.CreatedAt, added.UpdatedAt)
	}

	got, ok := store.Get(added.ID)
	if !ok {
		t.Fatal("expected listing to be retrievable")
	}
	if got.Manufacturer != "BMW" || got.Price != 65000 {
		t.Fatalf("unexpected stored record: %+v", got)
	}
}

func TestRapidAddsProduceDistinctIDs(t *testing.T) {
	store := NewStore(nil)
	first := store.Add(testListing("Audi", 75000, false))
	second := store.Add(testListing("Audi", 75000, false))
	if first.ID == second.ID {
		t.Fatal("expected distinct ids for back-to-back adds")
	}
}

func TestGetUnknownIDReturnsAbsent(t *testing.T) {
	store := NewStore(nil)
	if _, ok := store.Get(uuid.New()); ok {
		t.Fatal("expected absent for unknown id")
	}
}

func TestUpdateMergesPatchAndBumpsUpdatedAt(t *testing.T) {
	store := NewStore(nil)
	added := store.Add(testListing("Lexus", 48000, false))

	price := int64(45000)
	status := enums.CarStatusReserved
	updated, err := store.Update(added.ID, CarPatch{Price: &price, Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 45000 || updated.Status != enums.CarStatusReserved {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Manufacturer != "Lexus" {
		t.Fatal("untouched fields must survive the merge")
	}
	if updated.ID != added.ID || !updated.CreatedAt.Equal(added.CreatedAt) {
		t.Fatal("identity fields must never change")
	}
	if updated.UpdatedAt.Before(added.UpdatedAt) {
		t.Fatal("updated_at must not move backwards")
	}
}

func TestUpdateUnknownIDFails(t *testing.T) {
	store := NewStore(nil)
	if _, err := store.Update(uuid.New(), CarPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveIsNotIdempotent(t *testing.T) {
	store := NewStore(nil)
	added := store.Add(testListing("Tesla", 52000, false))

	if err := store.Remove(added.ID); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if err := store.Remove(added.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestFeaturedPreservesInsertionOrder(t *testing.T) {
	store := NewStore(nil)
	first := store.Add(testListing("BMW", 65000, true))
	store.Add(testListing("Toyota", 35000, false))
	third := store.Add(testListing("Porsche", 120000, true))

	featured := store.Featured()
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured listings, got %d", len(featured))
	}
	if featured[0].ID != first.ID || featured[1].ID != third.ID {
		t.Fatal("featured subset must keep insertion order")
	}
}

func TestListReturnsCopy(t *testing.T) {
	store := NewStore(nil)
	store.Add(testListing("BMW", 65000, false))

	listed := store.List()
	listed[0].Manufacturer = "mutated"

	again := store.List()
	if again[0].Manufacturer != "BMW" {
		t.Fatal("List must return a defensive copy")
	}
}
