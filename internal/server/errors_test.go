package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jobsprint/jobsprint/internal/db"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.com"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "email", Message: "required"}, http.StatusBadRequest},
		{"expired subscription", &ErrExpiredSubscription{}, http.StatusForbidden},
		{"no subscription", &ErrNoSubscription{}, http.StatusForbidden},
		{"invalid activation code", &ErrInvalidActivationCode{}, http.StatusUnprocessableEntity},
		{"code already used", &db.ErrCodeAlreadyUsed{Code: "JS-PRO-ABCDEF12"}, http.StatusUnprocessableEntity},
		{"code not found", &db.ErrCodeNotFound{Code: "NOPE"}, http.StatusUnprocessableEntity},
		{"reactivation not allowed", &ErrReactivationNotAllowed{Reason: "still active"}, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestHTTPStatus_WrappedCodeErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("redeem failed"), &db.ErrCodeAlreadyUsed{Code: "JS-STR-12345678"})
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(wrapped))
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrExpiredSubscription{}).Error(), "read-only")
	assert.Contains(t, (&ErrReactivationNotAllowed{Reason: "PREMIUM subscriptions do not qualify"}).Error(), "PREMIUM")
	assert.Contains(t, (&ErrEmailAlreadyExists{Email: "dana@example.com"}).Error(), "dana@example.com")
}
