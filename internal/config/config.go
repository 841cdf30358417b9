package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the inventory CLI.
type Config struct {
	DatabaseURL string
	SeedFile    string
	BackupFile  string
}

// Load resolves settings from an optional inventory.yaml in the working
// directory. Environment variables win over file values.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("seed_file", "inventory.csv")
	v.SetDefault("backup_file", "backup.csv")

	v.SetConfigName("inventory")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("inventory")
	v.AutomaticEnv()
	if err := v.BindEnv("database_url", "DATABASE_URL"); err != nil {
		return Config{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		DatabaseURL: v.GetString("database_url"),
		SeedFile:    v.GetString("seed_file"),
		BackupFile:  v.GetString("backup_file"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("Environment variable DATABASE_URL not found.")
	}

	return cfg, nil
}
