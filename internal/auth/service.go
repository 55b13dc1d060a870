package auth

import (
	"context"
	"errors"
	"time"

	"github.com/drivelinehq/driveline-backend/internal/users"
	pkgauth "github.com/drivelinehq/driveline-backend/pkg/auth"
	"github.com/drivelinehq/driveline-backend/pkg/auth/session"
	"github.com/drivelinehq/driveline-backend/pkg/config"
	pkgerrors "github.com/drivelinehq/driveline-backend/pkg/errors"
	"github.com/drivelinehq/driveline-backend/pkg/security"
	"github.com/google/uuid"
)

// SessionManager is the session surface the auth service needs.
type SessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

// ServiceParams groups dependencies for the auth service.
type ServiceParams struct {
	Users    *users.Store
	Profiles users.Service
	Sessions SessionManager
	JWT      config.JWTConfig
	Password config.PasswordConfig
}

// Service exposes login, registration, logout, and token refresh.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Logout(ctx context.Context, accessID string, userID uuid.UUID) error
	Refresh(ctx context.Context, req RefreshRequest) (AuthResponse, error)
}

type service struct {
	users    *users.Store
	profiles users.Service
	sessions SessionManager
	jwt      config.JWTConfig
	password config.PasswordConfig
}

// NewService builds an auth service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user store is required")
	}
	if params.Profiles == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "profile service is required")
	}
	if params.Sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session manager is required")
	}
	if params.JWT.Secret == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "jwt config is required")
	}
	return &service{
		users:    params.Users,
		profiles: params.Profiles,
		sessions: params.Sessions,
		jwt:      params.JWT,
		password: params.Password,
	}, nil
}

// Login verifies the credentials, opens a session, and writes the profile record.
func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	user, ok := s.users.FindByEmail(req.Email)
	if !ok {
		return AuthResponse{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}

	match, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !match {
		return AuthResponse{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}

	return s.openSession(ctx, user)
}

// Logout revokes the session and erases the persisted profile record.
func (s *service) Logout(ctx context.Context, accessID string, userID uuid.UUID) error {
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return s.profiles.ClearProfileRecord(ctx, userID)
}

// Refresh rotates the refresh token and mints a fresh access token.
func (s *service) Refresh(ctx context.Context, req RefreshRequest) (AuthResponse, error) {
	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwt, req.AccessToken)
	if err != nil {
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid access token")
	}
	if claims.ID == "" {
		return AuthResponse{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id")
	}

	newAccessID, newRefreshToken, err := s.sessions.Rotate(ctx, claims.ID, req.RefreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid refresh token")
		}
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotate session")
	}

	user, ok := s.users.FindByID(claims.UserID)
	if !ok {
		return AuthResponse{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "account no longer exists")
	}

	accessToken, err := pkgauth.MintAccessToken(s.jwt, time.Now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		JTI:    newAccessID,
	})
	if err != nil {
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return AuthResponse{
		User:         users.ToDTO(user),
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (s *service) openSession(ctx context.Context, user users.User) (AuthResponse, error) {
	accessID := session.NewAccessID()
	accessToken, err := pkgauth.MintAccessToken(s.jwt, time.Now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		JTI:    accessID,
	})
	if err != nil {
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	refreshToken, err := s.sessions.Generate(ctx, accessID)
	if err != nil {
		return AuthResponse{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "open session")
	}

	dto := users.ToDTO(user)
	if err := s.profiles.WriteProfileRecord(ctx, dto); err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{
		User:         dto,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
