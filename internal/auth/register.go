package auth

import (
	"context"
	"errors"

	"github.com/drivelinehq/driveline-backend/internal/users"
	"github.com/drivelinehq/driveline-backend/pkg/enums"
	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/drivelinehq/driveline-backend/pkg/security"
)

// Register creates the account and immediately opens a session for it.
func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	role, err := enums.ParseUserRole(req.Role)
	if err != nil {
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
	}

	hash, err := security.HashPassword(req.Password, s.password)
	if err != nil {
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.Create(users.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "email already registered")
		}
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create account")
	}

	return s.openSession(ctx, user)
}
