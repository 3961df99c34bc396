// Package server provides the HTTP REST API for JobSprint.
package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jobsprint/jobsprint/internal/config"
	"github.com/jobsprint/jobsprint/internal/server/middleware"
)

// Token purposes. Session tokens authorize API calls; magic-link tokens may
// only be exchanged for a session token.
const (
	purposeSession   = "session"
	purposeMagicLink = "magic_link"
)

// Claims represents JWT claims with user ID and token purpose.
type Claims struct {
	UserID  uuid.UUID `json:"user_id"`
	Purpose string    `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// GetUserID returns the user ID from the claims.
// This implements the middleware.UserIDGetter interface.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// AsTokenValidator returns a TokenValidator adapter for this JWTService.
// This allows the JWTService to be used with middleware without creating import cycles.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return &jwtServiceValidator{service: s}
}

// jwtServiceValidator adapts JWTService to middleware.TokenValidator interface.
type jwtServiceValidator struct {
	service *JWTService
}

func (v *jwtServiceValidator) ValidateToken(tokenString string) (middleware.UserIDGetter, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// JWTService provides JWT token generation and validation functionality.
type JWTService struct {
	config *config.JWTConfig
}

// NewJWTService creates a new JWT service with the given configuration.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		config: cfg,
	}
}

// GenerateToken generates a session JWT for the given user ID.
func (s *JWTService) GenerateToken(userID uuid.UUID) (string, error) {
	expiry := time.Duration(s.config.ExpirationHours) * time.Hour
	return s.generate(userID, purposeSession, expiry)
}

// GenerateMagicLinkToken generates a short-lived single-purpose token that a
// sign-in link embeds. It is not accepted as a session token.
func (s *JWTService) GenerateMagicLinkToken(userID uuid.UUID) (string, error) {
	expiry := time.Duration(s.config.MagicLinkExpirationMinutes) * time.Minute
	return s.generate(userID, purposeMagicLink, expiry)
}

func (s *JWTService) generate(userID uuid.UUID, purpose string, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:  userID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a session JWT and returns the claims. Magic-link
// tokens are rejected here; they must go through ValidateMagicLinkToken.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != "" && claims.Purpose != purposeSession {
		return nil, fmt.Errorf("token purpose %q is not valid for API access", claims.Purpose)
	}
	return claims, nil
}

// ValidateMagicLinkToken validates a magic-link token and returns the claims.
func (s *JWTService) ValidateMagicLinkToken(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != purposeMagicLink {
		return nil, fmt.Errorf("token is not a magic-link token")
	}
	return claims, nil
}

func (s *JWTService) parse(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		if err == jwt.ErrSignatureInvalid {
			return nil, fmt.Errorf("invalid token signature: %w", err)
		}
		if err == jwt.ErrTokenExpired {
			return nil, fmt.Errorf("token expired: %w", err)
		}
		if err == jwt.ErrTokenMalformed {
			return nil, fmt.Errorf("malformed token: %w", err)
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}
