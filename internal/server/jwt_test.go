package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsprint/jobsprint/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:                     "test-secret-for-unit-tests",
		ExpirationHours:            1,
		MagicLinkExpirationMinutes: 15,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_RejectsEmptyToken(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := testJWTService()
	other := NewJWTService(&config.JWTConfig{
		Secret:                     "a-different-secret",
		ExpirationHours:            1,
		MagicLinkExpirationMinutes: 15,
	})

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_MagicLinkTokenIsNotASessionToken(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	magic, err := svc.GenerateMagicLinkToken(userID)
	require.NoError(t, err)

	_, err = svc.ValidateToken(magic)
	assert.Error(t, err, "magic-link token must not authorize API calls")

	claims, err := svc.ValidateMagicLinkToken(magic)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_SessionTokenIsNotAMagicLink(t *testing.T) {
	svc := testJWTService()

	session, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateMagicLinkToken(session)
	assert.Error(t, err)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
