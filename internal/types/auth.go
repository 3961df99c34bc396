// Package types provides request and response definitions shared across the
// JobSprint HTTP surface.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RegisterRequest represents the request to create a new account. Password is
// optional at signup; magic-link users set one later.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// LoginRequest represents the password login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// MagicLinkRequest asks for a one-time sign-in link to be issued for an email.
type MagicLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ActivateRequest redeems an activation code for the authenticated user.
type ActivateRequest struct {
	Code string `json:"code" validate:"required,min=4"`
}

// User represents a user profile for API responses (avoids import cycle with db package).
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PasswordSet bool      `json:"password_set"`
	CurrentDay  int       `json:"current_day"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AuthResponse represents the register/login response with user data and token.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MagicLinkRequest using the validator.
func (r *MagicLinkRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ActivateRequest using the validator.
func (r *ActivateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
