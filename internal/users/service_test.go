package users

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/google/uuid"
)

type fakeProfileStore struct {
	values map[string]string
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{values: map[string]string{}}
}

func (f *fakeProfileStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeProfileStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) ProfileKey(userID string) string {
	return "dl:profile:" + userID
}

func seededUser() User {
	now := time.Now().UTC()
	return User{
		ID:           uuid.New(),
		Email:        "customer@example.com",
		Name:         "John Doe",
		PasswordHash: "$argon2id$v=19$m=8,t=1,p=1$c2FsdA$aGFzaA",
		Role:         enums.UserRoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newProfileService(t *testing.T, seed []User, profiles *fakeProfileStore) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Store:    NewStore(seed),
		Profiles: profiles,
		Keyer:    fakeKeyer{},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestGetStripsPasswordHash(t *testing.T) {
	user := seededUser()
	svc := newProfileService(t, []User{user}, newFakeProfileStore())

	dto, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if dto.Email != "customer@example.com" || dto.Name != "John Doe" {
		t.Fatalf("unexpected dto: %+v", dto)
	}

	payload, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(payload), "argon2id") {
		t.Fatal("password hash must never serialize")
	}
}

func TestGetUnknownUserIsNotFound(t *testing.T) {
	svc := newProfileService(t, nil, newFakeProfileStore())
	_, err := svc.Get(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateProfileWritesRecord(t *testing.T) {
	user := seededUser()
	profiles := newFakeProfileStore()
	svc := newProfileService(t, []User{user}, profiles)

	name := "Jane Doe"
	phone := "+1 555 0100"
	dto, err := svc.UpdateProfile(context.Background(), user.ID, ProfilePatch{Name: &name, Phone: &phone})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if dto.Name != "Jane Doe" || dto.Phone == nil || *dto.Phone != "+1 555 0100" {
		t.Fatalf("patch not applied: %+v", dto)
	}
	if !dto.UpdatedAt.After(user.UpdatedAt) {
		t.Fatal("updated_at must be bumped")
	}

	stored, ok := profiles.values["dl:profile:"+user.ID.String()]
	if !ok {
		t.Fatal("profile record must be written on update")
	}
	var record UserDTO
	if err := json.Unmarshal([]byte(stored), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record.Name != "Jane Doe" {
		t.Fatalf("record out of date: %+v", record)
	}
}

func TestClearProfileRecord(t *testing.T) {
	user := seededUser()
	profiles := newFakeProfileStore()
	svc := newProfileService(t, []User{user}, profiles)

	if err := svc.WriteProfileRecord(context.Background(), ToDTO(user)); err != nil {
		t.Fatalf("write record: %v", err)
	}
	if err := svc.ClearProfileRecord(context.Background(), user.ID); err != nil {
		t.Fatalf("clear record: %v", err)
	}
	if _, ok := profiles.values["dl:profile:"+user.ID.String()]; ok {
		t.Fatal("record must be erased")
	}
}

func TestStoreRejectsDuplicateEmail(t *testing.T) {
	store := NewStore([]User{seededUser()})
	_, err := store.Create(User{Email: "CUSTOMER@example.com", Name: "Copycat"})
	if err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestFindByEmailIsCaseInsensitive(t *testing.T) {
	store := NewStore([]User{seededUser()})
	if _, ok := store.FindByEmail("Customer@Example.COM"); !ok {
		t.Fatal("email lookup must be case-insensitive")
	}
}
