package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig controls how account passwords are hashed. Passwords are
// optional in JobSprint (magic-link login works without one), but when a user
// sets one it is stored as a bcrypt hash.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret mixed into every hash
}

// NewPasswordConfig reads BCRYPT_COST (default 12) and the optional
// PASSWORD_PEPPER from the environment.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost, err := envInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}

	c := &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashPassword returns the bcrypt hash of the peppered password.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.peppered(pw)), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches the stored hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(c.peppered(pw))) == nil
}

func (c *PasswordConfig) peppered(pw string) string {
	if c.Pepper == "" {
		return pw
	}
	return pw + c.Pepper
}
