package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/okan/hostelhub/internal/app/models"
	appRepos "github.com/okan/hostelhub/internal/app/repositories"
	"github.com/okan/hostelhub/internal/pkg/apperrors"
	"github.com/okan/hostelhub/internal/pkg/auth"
)

// CreateDefaultData creates the default admin and warden accounts and a few
// sample rooms if they don't exist. The default passwords are for first
// login only and should be rotated immediately on a real deployment.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	roomRepo := appRepos.NewRoomRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (users/rooms)...")
	var finalErr error

	defaultUsers := []struct {
		username  string
		email     string
		password  string
		firstName string
		lastName  string
		role      appModels.Role
	}{
		{"admin", "admin@hostelhub.local", "admin123", "Hostel", "Admin", appModels.RoleAdmin},
		{"warden", "warden@hostelhub.local", "warden123", "Hostel", "Warden", appModels.RoleWarden},
	}

	for _, u := range defaultUsers {
		hashed, err := auth.HashPassword(u.password)
		if err != nil {
			lgr.Error().Err(err).Str("username", u.username).Msg("Error hashing default password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &appModels.User{
			Username:  u.username,
			Email:     u.email,
			Password:  hashed,
			FirstName: u.firstName,
			LastName:  u.lastName,
			Role:      u.role,
			IsActive:  true,
		}
		err = userRepo.Create(ctx, user)
		if err != nil && !errors.Is(err, apperrors.ErrUsernameAlreadyExists) && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Str("username", u.username).Msg("Error creating default user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	defaultRooms := []appModels.Room{
		{RoomNo: "A101", RoomType: appModels.RoomTypeSingle, Capacity: 1, Floor: 1},
		{RoomNo: "A102", RoomType: appModels.RoomTypeDouble, Capacity: 2, Floor: 1},
		{RoomNo: "B201", RoomType: appModels.RoomTypeTriple, Capacity: 3, Floor: 2},
	}

	for i := range defaultRooms {
		err := roomRepo.Create(ctx, &defaultRooms[i])
		if err != nil && !errors.Is(err, apperrors.ErrRoomAlreadyExists) {
			lgr.Error().Err(err).Str("roomNo", defaultRooms[i].RoomNo).Msg("Error creating default room")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}
