package cars

import (
	"context"
	"testing"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/google/uuid"
)

func newTestService(t *testing.T, seed []Car) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Store: NewStore(seed)})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestServiceRequiresStore(t *testing.T) {
	if _, err := NewService(ServiceParams{}); err == nil {
		t.Fatal("expected error without store")
	}
}

func TestCreateAssignsOwnershipAndDefaults(t *testing.T) {
	svc := newTestService(t, nil)
	dealerID := uuid.New()

	dto, err := svc.Create(context.Background(), dealerID, CreateCarInput{
		Title:        "2024 Honda Civic",
		Manufacturer: "Honda",
		Model:        "Civic",
		Price:        28000,
		Year:         2024,
		Type:         enums.CarTypeSedan,
		Transmission: enums.TransmissionManual,
		FuelType:     enums.FuelTypePetrol,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.DealerID != dealerID {
		t.Fatal("dealer id must come from the caller's claims")
	}
	if dto.Status != enums.CarStatusAvailable {
		t.Fatalf("expected default status available, got %s", dto.Status)
	}
	if dto.Images == nil {
		t.Fatal("images must serialize as an empty array, not null")
	}
}

func TestCreateRejectsMissingDealer(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.Create(context.Background(), uuid.Nil, CreateCarInput{Title: "x"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestUpdateEnforcesOwnership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	seed := SeedListings(owner, stranger)
	svc := newTestService(t, seed)

	price := int64(64000)
	if _, err := svc.Update(context.Background(), owner, seed[0].ID, CarPatch{Price: &price}); err != nil {
		t.Fatalf("owner update: %v", err)
	}

	_, err := svc.Update(context.Background(), stranger, seed[0].ID, CarPatch{Price: &price})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden for other dealer, got %v", err)
	}
}

func TestDeleteUnknownCarIsNotFound(t *testing.T) {
	svc := newTestService(t, nil)
	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetMapsAbsentToNotFound(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.Get(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSearchDelegatesToFilter(t *testing.T) {
	seed := SeedListings(uuid.New(), uuid.New())
	svc := newTestService(t, seed)

	results := svc.Search(context.Background(), Filters{Manufacturer: []string{"BMW"}})
	if len(results) != 1 || results[0].Manufacturer != "BMW" {
		t.Fatalf("expected the BMW, got %d results", len(results))
	}
}
