package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/hostelmate/hostelmate-backend/internal/app/models"
	appRepos "github.com/hostelmate/hostelmate-backend/internal/app/repositories"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/apperrors"
	"github.com/hostelmate/hostelmate-backend/internal/pkg/auth"
)

const defaultAdminEmail = "admin@hostelmate.app"

// CreateDefaultData seeds the default admin account and a starter set of rooms
// if they do not exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	roomRepo := appRepos.NewRoomRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin account, rooms)...")
	var finalErr error

	// Default admin. The password comes from the environment in real
	// deployments; the fallback is for local development only.
	adminPassword := os.Getenv("ADMIN_DEFAULT_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin12345"
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		FirstName:    "Hostel",
		LastName:     "Admin",
		RoleType:     appModels.RoleAdmin,
	}
	if _, err := userRepo.CreateUser(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		finalErr = errors.Join(finalErr, err)
	}

	// Starter rooms, two per floor
	rooms := []*appModels.Room{
		{Number: "101", Floor: 1, Capacity: 4},
		{Number: "102", Floor: 1, Capacity: 4},
		{Number: "201", Floor: 2, Capacity: 3},
		{Number: "202", Floor: 2, Capacity: 3},
	}
	for _, room := range rooms {
		if _, err := roomRepo.Create(ctx, room); err != nil && !errors.Is(err, apperrors.ErrRoomAlreadyExists) {
			lgr.Error().Err(err).Str("number", room.Number).Msg("Error creating default room")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
