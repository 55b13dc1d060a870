package users

import (
	"time"

	"github.com/drivelinehq/driveline-backend/pkg/enums"
	"github.com/google/uuid"
)

// User is an account record. PasswordHash is an Argon2id encoded string and
// never leaves this package.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         enums.UserRole
	Avatar       *string
	Phone        *string
	Address      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfilePatch carries the user-mutable profile fields.
type ProfilePatch struct {
	Name    *string
	Avatar  *string
	Phone   *string
	Address *string
}
