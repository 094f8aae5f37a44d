package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the configuration used by tests that talk to a real
// MongoDB instance. It reads TEST_DATABASE_URL and TEST_DATABASE_NAME from the
// .env file or the environment.
// When TEST_DATABASE_URL is not set the returned Config has an empty
// Database.URL, which callers use to skip the test.
func LoadTestConfig() *Config {
	// Try to load .env file (ignore error if file doesn't exist - it's optional)
	_ = godotenv.Load("./../../.env")
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Database.Timeout = defaultStorageTimeout
	cfg.Database.URL = strings.TrimSpace(os.Getenv("TEST_DATABASE_URL"))
	if cfg.Database.URL == "" {
		return cfg
	}

	cfg.Database.Name = strings.TrimSpace(os.Getenv("TEST_DATABASE_NAME"))
	if cfg.Database.Name == "" {
		cfg.Database.Name = "benventuring_test"
	}

	if raw := os.Getenv("TEST_STORAGE_TIMEOUT"); raw != "" {
		if timeout, err := time.ParseDuration(raw); err == nil && timeout > 0 {
			cfg.Database.Timeout = timeout
		}
	}

	return cfg
}
