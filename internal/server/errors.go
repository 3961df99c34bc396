// Package server provides the HTTP REST API for JobSprint.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jobsprint/jobsprint/internal/db"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrExpiredSubscription indicates the entitlement gate rejected a write
// because the subscription is past its end date.
type ErrExpiredSubscription struct{}

func (e *ErrExpiredSubscription) Error() string {
	return "subscription expired: account is read-only"
}

// ErrNoSubscription indicates the user has never activated.
type ErrNoSubscription struct{}

func (e *ErrNoSubscription) Error() string {
	return "no active subscription: activation required"
}

// ErrInvalidActivationCode indicates the presented code matched neither a
// master tier code nor an unused minted code.
type ErrInvalidActivationCode struct{}

func (e *ErrInvalidActivationCode) Error() string {
	return "invalid or already used activation code"
}

// ErrReactivationNotAllowed indicates the subscription does not qualify for
// the discounted reactivation offer.
type ErrReactivationNotAllowed struct {
	Reason string
}

func (e *ErrReactivationNotAllowed) Error() string {
	return fmt.Sprintf("reactivation not allowed: %s", e.Reason)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var codeUsed *db.ErrCodeAlreadyUsed
	var codeNotFound *db.ErrCodeNotFound
	if errors.As(err, &codeUsed) || errors.As(err, &codeNotFound) {
		return http.StatusUnprocessableEntity
	}

	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrExpiredSubscription, *ErrNoSubscription:
		return http.StatusForbidden
	case *ErrInvalidActivationCode:
		return http.StatusUnprocessableEntity
	case *ErrReactivationNotAllowed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
