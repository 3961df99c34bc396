package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/jobsprint/jobsprint/internal/billing"
	"github.com/jobsprint/jobsprint/internal/server/middleware"
)

func gateRequest(t *testing.T, s *Server, resolve entitlementSource, withUser bool) *httptest.ResponseRecorder {
	t.Helper()

	called := false
	handler := s.gate(resolve, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	if withUser {
		req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
	}

	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code == http.StatusNoContent {
		assert.True(t, called)
	} else {
		assert.False(t, called)
	}
	return rec
}

func TestGate_ActiveSubscriptionPasses(t *testing.T) {
	s := &Server{logger: zap.NewNop()}
	resolve := func(ctx context.Context, userID uuid.UUID) (billing.Entitlement, error) {
		return billing.Entitlement{IsActive: true}, nil
	}

	rec := gateRequest(t, s, resolve, true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGate_ExpiredSubscriptionForbidden(t *testing.T) {
	s := &Server{logger: zap.NewNop()}
	resolve := func(ctx context.Context, userID uuid.UUID) (billing.Entitlement, error) {
		return billing.Entitlement{IsActive: false, IsExpired: true}, nil
	}

	rec := gateRequest(t, s, resolve, true)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "read-only")
}

func TestGate_NoSubscriptionForbidden(t *testing.T) {
	s := &Server{logger: zap.NewNop()}
	resolve := func(ctx context.Context, userID uuid.UUID) (billing.Entitlement, error) {
		return billing.Entitlement{}, nil
	}

	rec := gateRequest(t, s, resolve, true)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGate_MissingUserUnauthorized(t *testing.T) {
	s := &Server{logger: zap.NewNop()}
	resolve := func(ctx context.Context, userID uuid.UUID) (billing.Entitlement, error) {
		t.Fatal("resolver must not run without an authenticated user")
		return billing.Entitlement{}, nil
	}

	rec := gateRequest(t, s, resolve, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGate_ResolverFailure(t *testing.T) {
	s := &Server{logger: zap.NewNop()}
	resolve := func(ctx context.Context, userID uuid.UUID) (billing.Entitlement, error) {
		return billing.Entitlement{}, fmt.Errorf("database unavailable")
	}

	rec := gateRequest(t, s, resolve, true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
