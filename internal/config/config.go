// Package config reads server and token settings from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"tradelog/internal/logger"
)

const (
	devSecret  = "fallback-secret-key-for-dev-only"
	defaultTTL = 720 * time.Hour
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// JWT
	JWTSecret        string
	JWTIssuer        string
	JWTExpirationDur time.Duration

	// Currency label printed next to amounts; amounts themselves carry none.
	Currency string
}

// Load reads configuration from the environment, after merging an optional
// .env file. Production refuses to start on the development secret.
func Load() (*Config, error) {
	log := logger.Named("config")
	if err := godotenv.Load(); err != nil {
		log.Debugw(".env file not loaded", "error", err)
	}

	cfg := &Config{
		Env:              getEnv("ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", devSecret),
		JWTIssuer:        getEnv("JWT_ISSUER", "tradelog"),
		JWTExpirationDur: defaultTTL,
		Currency:         getEnv("CURRENCY", "USD"),
	}

	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			log.Warnw("invalid JWT_EXPIRES_IN, using default", "value", raw, "default", defaultTTL)
		} else {
			cfg.JWTExpirationDur = ttl
		}
	}

	if cfg.IsProduction() && cfg.JWTSecret == devSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set when ENV=production")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
