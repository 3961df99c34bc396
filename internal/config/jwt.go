// Package config provides JWT configuration functionality.
package config

import (
	"fmt"
	"os"
)

// JWTConfig holds configuration for session tokens and magic-link login
// tokens.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
	// MagicLinkExpirationMinutes bounds the lifetime of emailed login links.
	MagicLinkExpirationMinutes int
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required), JWT_EXPIRATION_HOURS (default: 24), and
// MAGIC_LINK_EXPIRATION_MINUTES (default: 15).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	expirationHours, err := envInt("JWT_EXPIRATION_HOURS", 24)
	if err != nil {
		return nil, err
	}

	magicLinkMinutes, err := envInt("MAGIC_LINK_EXPIRATION_MINUTES", 15)
	if err != nil {
		return nil, err
	}

	config := &JWTConfig{
		Secret:                     secret,
		ExpirationHours:            expirationHours,
		MagicLinkExpirationMinutes: magicLinkMinutes,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	if c.MagicLinkExpirationMinutes < 1 {
		return fmt.Errorf("MAGIC_LINK_EXPIRATION_MINUTES must be at least 1 minute, got: %d", c.MagicLinkExpirationMinutes)
	}
	return nil
}
