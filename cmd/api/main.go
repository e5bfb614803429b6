package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/textex/textex/internal/pkg/logger"
	"github.com/textex/textex/internal/server"
)

// @title TextEx API
// @version 1.0
// @description Campus textbook exchange: catalog, student accounts, sell offers and buy requests

// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token for the /me endpoints

func main() {
	// A local .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
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
}
