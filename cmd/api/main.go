package main

import (
	"github.com/joho/godotenv"

	"github.com/okan/hostelhub/internal/pkg/logger"
	"github.com/okan/hostelhub/internal/server"
)

// @title HostelHub API
// @version 1.0
// @description Role-based hostel administration backend

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A missing .env file is fine; config falls back to defaults and
	// explicit environment variables
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server execution failed or shutdown encountered errors")
	}

	logger.Info().Msg("Application finished gracefully.")
}
