package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rogerio-castellano/inventory-cli/internal/cli"
	"github.com/rogerio-castellano/inventory-cli/internal/config"
	"github.com/rogerio-castellano/inventory-cli/internal/csvio"
	"github.com/rogerio-castellano/inventory-cli/internal/db"
	"github.com/rogerio-castellano/inventory-cli/internal/logging"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
)

func main() {
	logging.Init()
	logger := logging.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Could not load configuration")
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Could not connect to database")
	}
	defer database.Close()
	logger.Info().Msg("✅ Connected to database")

	if err := db.EnsureSchema(database); err != nil {
		logger.Fatal().Err(err).Msg("❌ Could not create the products table")
	}
	logger.Debug().Msg("products table ensured")

	products := repo.NewPostgresProductRepository(database)

	summary, err := csvio.ImportSeed(products, cfg.SeedFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Could not import the seed file")
	}
	if summary.SeedMissing {
		fmt.Printf("%s file not found, no current data loaded to database\n", cfg.SeedFile)
	} else {
		logger.Info().
			Int("created", summary.Created).
			Int("updated", summary.Updated).
			Msg("✅ Seed data loaded")
	}

	session := cli.NewSession(os.Stdin, os.Stdout, products, cfg.BackupFile)
	if err := session.Run(); err != nil {
		logger.Fatal().Err(err).Msg("❌ Session ended with an error")
	}
}
