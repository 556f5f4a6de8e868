package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/campushq/discipline/internal/pkg/logger"
	"github.com/campushq/discipline/internal/server"
)

// @title Disciplinary Committee API
// @version 1.0
// @description Case-management service for a college disciplinary committee

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	// A missing .env is fine; config falls back to files and real env vars.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
