package users

import (
	"fmt"
	"time"

	"github.com/drivelinehq/driveline-backend/pkg/config"
	"github.com/drivelinehq/driveline-backend/pkg/enums"
	"github.com/drivelinehq/driveline-backend/pkg/security"
	"github.com/google/uuid"
)

const seedPassword = "password"

// SeedAccounts returns the demo customer and dealer. Hashes are computed at
// seed time so the stored format always matches the active Argon2id params.
func SeedAccounts(cfg config.PasswordConfig) ([]User, error) {
	hash, err := security.HashPassword(seedPassword, cfg)
	if err != nil {
		return nil, fmt.Errorf("hashing seed password: %w", err)
	}

	created := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	return []User{
		{
			ID:           uuid.New(),
			Email:        "customer@example.com",
			Name:         "John Doe",
			PasswordHash: hash,
			Role:         enums.UserRoleCustomer,
			CreatedAt:    created,
			UpdatedAt:    created,
		},
		{
			ID:           uuid.New(),
			Email:        "dealer@example.com",
			Name:         "Auto Dealership Inc.",
			PasswordHash: hash,
			Role:         enums.UserRoleDealer,
			CreatedAt:    created,
			UpdatedAt:    created,
		},
	}, nil
}
