package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := NewAppConfig()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestNewAppConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobsprint")
	t.Setenv("PORT", "")
	t.Setenv("SUBSCRIPTION_SWEEP_INTERVAL_HOURS", "")

	cfg, err := NewAppConfig()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 1, cfg.SweepIntervalHours)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestNewAppConfig_InvalidPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobsprint")
	t.Setenv("PORT", "99999")

	_, err := NewAppConfig()

	assert.Error(t, err)
}

func TestNewAppConfig_ActivationCodes(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobsprint")
	t.Setenv("ACTIVATION_CODE_STARTER", "JS-STR-LAUNCH24")
	t.Setenv("ACTIVATION_CODE_PRO", "JS-PRO-LAUNCH24")

	cfg, err := NewAppConfig()

	require.NoError(t, err)
	assert.Equal(t, "JS-STR-LAUNCH24", cfg.StarterCode)
	assert.Equal(t, "JS-PRO-LAUNCH24", cfg.ProCode)
	assert.Empty(t, cfg.PremiumCode)
}

func TestNewJWTConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()

	assert.Error(t, err)
}

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("MAGIC_LINK_EXPIRATION_MINUTES", "")

	cfg, err := NewJWTConfig()

	require.NoError(t, err)
	assert.Equal(t, 24, cfg.ExpirationHours)
	assert.Equal(t, 15, cfg.MagicLinkExpirationMinutes)
}

func TestNewPasswordConfig_CostBounds(t *testing.T) {
	t.Setenv("BCRYPT_COST", "9")

	_, err := NewPasswordConfig()

	assert.Error(t, err)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, cfg.VerifyPassword("hunter2hunter2", hash))
	assert.False(t, cfg.VerifyPassword("wrong-password", hash))
}

func TestPasswordConfig_PepperChangesHash(t *testing.T) {
	plain := &PasswordConfig{BcryptCost: 10}
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "side-secret"}

	hash, err := peppered.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("hunter2hunter2", hash))
	assert.False(t, plain.VerifyPassword("hunter2hunter2", hash))
}
