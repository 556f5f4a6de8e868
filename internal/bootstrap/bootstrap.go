package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campushq/discipline/internal/app/controllers"
	appMigrations "github.com/campushq/discipline/internal/app/migrations"
	appRepos "github.com/campushq/discipline/internal/app/repositories"
	appRoutes "github.com/campushq/discipline/internal/app/routes"
	appServices "github.com/campushq/discipline/internal/app/services"
	"github.com/campushq/discipline/internal/config"
	"github.com/campushq/discipline/internal/db"
	appMiddleware "github.com/campushq/discipline/internal/middleware"
	"github.com/campushq/discipline/internal/pkg/helpers"
	"github.com/campushq/discipline/internal/pkg/logger"
	"github.com/campushq/discipline/internal/pkg/session"
	"github.com/campushq/discipline/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	CaseService         appServices.CaseService
	DashboardService    appServices.DashboardService
	ProfileService      appServices.ProfileService
	AuthController      *appControllers.AuthController
	CaseController      *appControllers.CaseController
	DashboardController *appControllers.DashboardController
	APIController       *appControllers.APIController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	SessionStore        *session.PGStore
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create Default Data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	sessionTTL := helpers.ParseDuration(cfg.Session.TTL, 720*time.Hour)
	deps.SessionStore = session.NewPGStore(dbPool, []byte(cfg.Session.Secret), sessionTTL, cfg.Session.CookieSecure)

	// Stale session records are swept once at startup.
	if n, err := deps.SessionStore.DeleteExpired(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to sweep expired sessions")
	} else if n > 0 {
		lgr.Info().Int64("count", n).Msg("Swept expired sessions")
	}

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.ProfileRepository,
		deps.Repos.ActivityRepository,
		lgr,
	)
	deps.CaseService = appServices.NewCaseService(deps.Repos.CaseRepository, lgr)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.UserRepository,
		deps.Repos.ProfileRepository,
		deps.Repos.CaseRepository,
		lgr,
	)
	deps.ProfileService = appServices.NewProfileService(
		deps.Repos.UserRepository,
		deps.Repos.ProfileRepository,
		deps.Repos.ActivityRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionStore)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.SessionStore, deps.Logger)
	deps.CaseController = appControllers.NewCaseController(deps.CaseService, deps.Logger)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, deps.Logger)
	deps.APIController = appControllers.NewAPIController(
		deps.AuthService,
		deps.ProfileService,
		deps.DashboardService,
		deps.SessionStore,
		deps.Logger,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.LoadHTMLGlob(filepath.Join("web", "templates", "*.html"))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CaseController,
		deps.DashboardController,
		deps.APIController,
		deps.AuthMiddleware,
	)

	return router
}
