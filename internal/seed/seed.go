package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campushq/discipline/internal/app/models"
	appRepos "github.com/campushq/discipline/internal/app/repositories"
	"github.com/campushq/discipline/internal/config"
	"github.com/campushq/discipline/internal/pkg/apperrors"
	pkgAuth "github.com/campushq/discipline/internal/pkg/auth"
)

// CreateDefaultData creates the default committee teacher account when one
// is configured and absent. Re-running it is a no-op.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.TeacherEmail == "" || cfg.Seed.TeacherPassword == "" {
		lgr.Debug().Msg("No default teacher account configured, skipping seed")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Str("email", cfg.Seed.TeacherEmail).Msg("Checking/Creating default teacher account...")

	exists, err := userRepo.IdentifierExists(ctx, cfg.Seed.TeacherEmail, appModels.RoleTeacher)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default teacher account")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := pkgAuth.HashPassword(cfg.Seed.TeacherPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default teacher password")
		return err
	}

	teacher := &appModels.User{
		Identifier: cfg.Seed.TeacherEmail,
		Email:      cfg.Seed.TeacherEmail,
		Password:   hashed,
		FullName:   "Disciplinary Committee",
		RoleType:   appModels.RoleTeacher,
	}

	id, err := userRepo.CreateUser(ctx, teacher)
	if err != nil {
		// A concurrent boot may have created it in between
		if errors.Is(err, apperrors.ErrDuplicateIdentifier) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default teacher account")
		return err
	}

	lgr.Info().Int64("userID", id).Msg("Default teacher account created")
	return nil
}
