// Command admin is the operator's maintenance tool. It talks to the
// database directly and is never exposed over HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/campushq/discipline/internal/app/migrations"
	"github.com/campushq/discipline/internal/app/repositories"
	"github.com/campushq/discipline/internal/app/services"
	"github.com/campushq/discipline/internal/bootstrap"
	"github.com/campushq/discipline/internal/db"
	"github.com/campushq/discipline/internal/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found")
	}

	app := &cli.App{
		Name:  "admin",
		Usage: "maintenance operations for the disciplinary case system",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "apply pending database migrations",
				Action: func(c *cli.Context) error {
					pool, err := connect()
					if err != nil {
						return err
					}
					defer pool.Close()

					migrator := migrations.NewMigrator(pool)
					return migrator.MigrateFromDirectory("migrations")
				},
			},
			{
				Name:  "add-teacher",
				Usage: "create a teacher account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true, Usage: "teacher login email"},
					&cli.StringFlag{Name: "password", Required: true, Usage: "initial password"},
				},
				Action: func(c *cli.Context) error {
					pool, err := connect()
					if err != nil {
						return err
					}
					defer pool.Close()

					repos := repositories.NewRepositories(pool)
					authService := services.NewAuthService(
						repos.UserRepository,
						repos.ProfileRepository,
						repos.ActivityRepository,
						log.Logger,
					)

					user, err := authService.RegisterTeacher(context.Background(), c.String("email"), c.String("password"))
					if err != nil {
						return err
					}
					fmt.Printf("Teacher account created with id %d\n", user.ID)
					return nil
				},
			},
			{
				Name:  "clear-cases",
				Usage: "delete every case record",
				Action: func(c *cli.Context) error {
					pool, err := connect()
					if err != nil {
						return err
					}
					defer pool.Close()

					repos := repositories.NewRepositories(pool)
					caseService := services.NewCaseService(repos.CaseRepository, log.Logger)

					deleted, err := caseService.ClearAllCases(context.Background())
					if err != nil {
						return err
					}
					fmt.Printf("Deleted %d cases\n", deleted)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Admin command failed")
		os.Exit(1)
	}
}

func connect() (*pgxpool.Pool, error) {
	cfg, _, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, err
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}
	return database.Pool, nil
}
