// Command migrate creates the store and its tables if they are missing.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/nexusgo/foodtracker/backend/config"
	"github.com/nexusgo/foodtracker/backend/internal/database"
	"github.com/nexusgo/foodtracker/backend/internal/logger"
)

func main() {
	path := flag.String("path", "", "SQLite file to initialise (overrides FOODTRACKER_DATABASE__PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		stderrLog := zerolog.New(os.Stderr)
		stderrLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	if *path != "" {
		cfg.Database.Path = *path
	}
	log := logger.New(cfg)

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close(db)

	if err := database.InitSchema(db); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schema")
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("schema is up to date")
}
