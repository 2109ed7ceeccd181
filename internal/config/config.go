package config

import (
	"os"
	"strconv"
)

// DefaultDatabaseURI is the local development database.
const DefaultDatabaseURI = "mongodb://127.0.0.1:27017/elearning"

// Config holds application configuration loaded from environment variables.
type Config struct {
	DatabaseURI string // MONGODB_URI, default DefaultDatabaseURI; "sqlite:<path>" selects SQLite
	DataDir     string // SEED_DATA_DIR, optional; datasets are embedded when empty
	Debug       bool   // SEED_DEBUG, default false
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DatabaseURI: envOr("MONGODB_URI", DefaultDatabaseURI),
		DataDir:     os.Getenv("SEED_DATA_DIR"),
		Debug:       envBool("SEED_DEBUG"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}
