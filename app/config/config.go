package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration, sourced from the environment.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// DBPath is the Badger directory. Empty means an in-memory store
	// whose contents are lost on restart.
	DBPath string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads configuration from the environment, honoring a .env file
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:   getenv("PINBOARD_ADDR", ":8080"),
		DBPath: os.Getenv("PINBOARD_DB_PATH"),
	}
}
