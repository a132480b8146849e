package main

import (
	"os"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/pkg/logger"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/server"
)

// @title CCOMP UERJ Progress API
// @version 1.0
// @description Degree-progress tracker for the UERJ computer science curriculum. Proxies student and discipline data from the progress backend and derives course statuses, weekly schedules and cohort rankings.

// @contact.name API Support
// @contact.url https://github.com/JG-OLIVEIRA/ccomp-uerj-progress

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

func main() {
	// NewServer orchestrates config, logger, catalog and dependency setup
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
