// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dukerupert/maeumsee/internal/growth"
)

const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
)

type Config struct {
	Addr           string
	DBPath         string
	Storage        string
	DataDir        string
	LogLevel       string
	LogFormat      string
	GrowthStrategy growth.Strategy
	Location       *time.Location

	// BackupPath receives an encrypted snapshot on shutdown; RestorePath is
	// restored once at startup. Both use BackupPassphrase.
	BackupPath       string
	RestorePath      string
	BackupPassphrase string
}

// Load reads a .env file if one exists, then the MAEUMSEE_* variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:      getEnv("MAEUMSEE_ADDR", "127.0.0.1:8080"),
		DBPath:    getEnv("MAEUMSEE_DB_PATH", "maeumsee.db"),
		Storage:   strings.ToLower(getEnv("MAEUMSEE_STORAGE", StorageSQLite)),
		DataDir:   getEnv("MAEUMSEE_DATA_DIR", "data"),
		LogLevel:  getEnv("MAEUMSEE_LOG_LEVEL", "info"),
		LogFormat: getEnv("MAEUMSEE_LOG_FORMAT", "text"),
		Location:  time.Local,

		BackupPath:       getEnv("MAEUMSEE_BACKUP_PATH", ""),
		RestorePath:      getEnv("MAEUMSEE_RESTORE_PATH", ""),
		BackupPassphrase: os.Getenv("MAEUMSEE_BACKUP_PASSPHRASE"),
	}

	if cfg.Storage != StorageSQLite && cfg.Storage != StorageFile {
		return Config{}, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	if (cfg.BackupPath != "" || cfg.RestorePath != "") && cfg.BackupPassphrase == "" {
		return Config{}, fmt.Errorf("MAEUMSEE_BACKUP_PASSPHRASE is required for file backups")
	}

	strategy, err := growth.ParseStrategy(getEnv("MAEUMSEE_GROWTH_STRATEGY", "points"))
	if err != nil {
		return Config{}, err
	}
	cfg.GrowthStrategy = strategy

	if tz := os.Getenv("MAEUMSEE_TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("load location: %w", err)
		}
		cfg.Location = loc
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
