// Package config provides environment-driven configuration for the JobSprint
// server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// AppConfig holds the top-level server configuration.
type AppConfig struct {
	Port        int
	DatabaseURL string

	Redis RedisConfig

	// Master activation codes, one reusable shared secret per tier.
	// Unset codes simply never match.
	StarterCode string
	ProCode     string
	PremiumCode string

	// SweepIntervalHours controls how often the subscription expiry sweeper
	// runs.
	SweepIntervalHours int

	// RateLimitPerMinute caps requests per client per minute. Zero disables
	// rate limiting (useful in tests and when no cache is configured).
	RateLimitPerMinute int
}

// RedisConfig holds cache connection settings. Addr may be empty, in which
// case the server runs without a cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewAppConfig builds the application configuration from environment
// variables. DATABASE_URL is required; everything else has a default.
func NewAppConfig() (*AppConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	port, err := envInt("PORT", 8080)
	if err != nil {
		return nil, err
	}

	redisDB, err := envInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	sweepHours, err := envInt("SUBSCRIPTION_SWEEP_INTERVAL_HOURS", 1)
	if err != nil {
		return nil, err
	}

	rateLimit, err := envInt("RATE_LIMIT_PER_MINUTE", 120)
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{
		Port:        port,
		DatabaseURL: databaseURL,
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		StarterCode:        os.Getenv("ACTIVATION_CODE_STARTER"),
		ProCode:            os.Getenv("ACTIVATION_CODE_PRO"),
		PremiumCode:        os.Getenv("ACTIVATION_CODE_PREMIUM"),
		SweepIntervalHours: sweepHours,
		RateLimitPerMinute: rateLimit,
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *AppConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.SweepIntervalHours < 1 {
		return fmt.Errorf("SUBSCRIPTION_SWEEP_INTERVAL_HOURS must be at least 1, got: %d", c.SweepIntervalHours)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE cannot be negative, got: %d", c.RateLimitPerMinute)
	}
	return nil
}

// envInt reads an integer environment variable with a default.
func envInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return v, nil
}
