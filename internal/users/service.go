package users

import (
	"context"
	"encoding/json"
	"time"

	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/google/uuid"
)

type profileStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type profileKeyer interface {
	ProfileKey(userID string) string
}

// ServiceParams groups dependencies for the profile service.
type ServiceParams struct {
	Store    *Store
	Profiles profileStore
	Keyer    profileKeyer
}

// Service exposes account reads and profile mutation. The persisted profile
// record mirrors the account on every write and is erased on logout.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (UserDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch ProfilePatch) (UserDTO, error)
	WriteProfileRecord(ctx context.Context, user UserDTO) error
	ClearProfileRecord(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	store    *Store
	profiles profileStore
	keyer    profileKeyer
}

// NewService builds a profile service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user store is required")
	}
	if params.Profiles == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "profile store is required")
	}
	if params.Keyer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "profile keyer is required")
	}
	return &service{
		store:    params.Store,
		profiles: params.Profiles,
		keyer:    params.Keyer,
	}, nil
}

// Get returns the account for userID.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (UserDTO, error) {
	if userID == uuid.Nil {
		return UserDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user id is required")
	}
	user, ok := s.store.FindByID(userID)
	if !ok {
		return UserDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return ToDTO(user), nil
}

// UpdateProfile merges the patch and refreshes the persisted profile record.
func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, patch ProfilePatch) (UserDTO, error) {
	if userID == uuid.Nil {
		return UserDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user id is required")
	}
	user, err := s.store.Update(userID, patch)
	if err != nil {
		return UserDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
	}
	dto := ToDTO(user)
	if err := s.WriteProfileRecord(ctx, dto); err != nil {
		return UserDTO{}, err
	}
	return dto, nil
}

// WriteProfileRecord stores the profile JSON under the user's single key.
func (s *service) WriteProfileRecord(ctx context.Context, user UserDTO) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode profile record")
	}
	key := s.keyer.ProfileKey(user.ID.String())
	if err := s.profiles.Set(ctx, key, string(payload), 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store profile record")
	}
	return nil
}

// ClearProfileRecord erases the persisted record.
func (s *service) ClearProfileRecord(ctx context.Context, userID uuid.UUID) error {
	if err := s.profiles.Del(ctx, s.keyer.ProfileKey(userID.String())); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear profile record")
	}
	return nil
}
