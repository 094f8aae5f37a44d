// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerPort     = 8000
	defaultStorageTimeout = 10 * time.Second
	defaultRateLimit      = 100
)

// Config holds all configuration for the application
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

// DatabaseConfig holds document store connection settings
type DatabaseConfig struct {
	URL     string
	Name    string
	Timeout time.Duration
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig holds per-IP request limits
type RateLimitConfig struct {
	RequestsPerMinute int
}

// Load reads configuration from environment variables.
//
// Missing database settings are not an error: the storage client starts in
// a degraded state instead. Only malformed values fail.
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}

	// Database configuration
	cfg.Database.URL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.Database.Name = strings.TrimSpace(os.Getenv("DATABASE_NAME"))

	timeoutStr := os.Getenv("STORAGE_TIMEOUT")
	if timeoutStr == "" {
		cfg.Database.Timeout = defaultStorageTimeout
	} else {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid STORAGE_TIMEOUT: %w", err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("STORAGE_TIMEOUT must be positive")
		}
		cfg.Database.Timeout = timeout
	}

	// Server configuration
	port, err := intFromEnv("PORT", defaultServerPort)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d out of range", port)
	}
	cfg.Server.Port = port

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	rateLimit, err := intFromEnv("RATE_LIMIT_PER_MINUTE", defaultRateLimit)
	if err != nil {
		return nil, err
	}
	cfg.RateLimit.RequestsPerMinute = rateLimit

	return cfg, nil
}

// DatabaseURLSet reports whether a connection string was configured
func (c *Config) DatabaseURLSet() bool {
	return c.Database.URL != ""
}

// DatabaseNameSet reports whether a database name was configured
func (c *Config) DatabaseNameSet() bool {
	return c.Database.Name != ""
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func intFromEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// parseOrigins splits a comma-separated origin list.
// An empty list means all origins are allowed.
func parseOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	origins := strings.Split(raw, ",")
	allowed := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowed = append(allowed, origin)
		}
	}
	if len(allowed) == 0 {
		return []string{"*"}
	}
	return allowed
}
