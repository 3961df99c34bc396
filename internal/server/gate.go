// Package server provides the HTTP REST API for JobSprint.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jobsprint/jobsprint/internal/billing"
	"github.com/jobsprint/jobsprint/internal/cache"
	"github.com/jobsprint/jobsprint/internal/server/middleware"
)

// cachedEntitlement is the gate decision stored in the cache. ExpiresAt
// bounds staleness: a decision cached while ACTIVE must not outlive the
// subscription window it was derived from.
type cachedEntitlement struct {
	IsActive  bool      `json:"is_active"`
	ExpiresAt time.Time `json:"expires_at"`
}

// entitlementSource resolves the gate decision for a user.
type entitlementSource func(ctx context.Context, userID uuid.UUID) (billing.Entitlement, error)

// requireActive wraps a mutating handler with the entitlement gate. Reads are
// never gated; every write on user-owned data goes through here. A user whose
// effective status is not ACTIVE gets 403 and the stored row is lazily
// corrected.
func (s *Server) requireActive(next http.HandlerFunc) http.HandlerFunc {
	return s.gate(s.entitlementFor, next)
}

func (s *Server) gate(resolve entitlementSource, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.GetUserID(r)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ent, err := resolve(r.Context(), userID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to check subscription")
			return
		}
		if !ent.IsActive {
			s.errorResponse(w, http.StatusForbidden, (&ErrExpiredSubscription{}).Error())
			return
		}

		next(w, r)
	}
}

// entitlementFor resolves the gate decision for a user, consulting the cache
// first. A user with no subscription row at all is treated as expired.
func (s *Server) entitlementFor(ctx context.Context, userID uuid.UUID) (billing.Entitlement, error) {
	now := time.Now()

	if s.cache != nil {
		var cached cachedEntitlement
		err := s.cache.GetEntitlement(ctx, userID, &cached)
		if err == nil && now.Before(cached.ExpiresAt) {
			return billing.Entitlement{IsActive: cached.IsActive, IsExpired: !cached.IsActive}, nil
		}
		if err != nil && err != cache.ErrCacheMiss {
			s.logger.Warn("entitlement cache read failed", zap.Error(err))
		}
	}

	sub, err := s.db.GetLatestSubscription(ctx, userID)
	if err != nil {
		return billing.Entitlement{}, err
	}
	if sub == nil {
		return billing.Entitlement{IsActive: false, IsExpired: true}, nil
	}

	ent := billing.CheckActive(sub.Status, sub.EndDate, now)

	if billing.NeedsLazyCorrection(sub.Status, sub.EndDate, now) {
		if err := s.db.MarkSubscriptionReadOnly(ctx, sub.ID); err != nil {
			s.logger.Warn("lazy subscription correction failed",
				zap.String("subscription_id", sub.ID.String()),
				zap.Error(err),
			)
		}
	}

	if s.cache != nil {
		expiresAt := now.Add(cache.EntitlementCacheTTL)
		if ent.IsActive && sub.EndDate.Before(expiresAt) {
			expiresAt = sub.EndDate
		}
		cached := cachedEntitlement{IsActive: ent.IsActive, ExpiresAt: expiresAt}
		if err := s.cache.SetEntitlement(ctx, userID, cached); err != nil {
			s.logger.Warn("entitlement cache write failed", zap.Error(err))
		}
	}

	return ent, nil
}

// invalidateEntitlement drops the cached gate decision after activation or
// reactivation so the next request sees the new subscription immediately.
func (s *Server) invalidateEntitlement(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateEntitlement(ctx, userID); err != nil {
		s.logger.Warn("entitlement cache invalidation failed", zap.Error(err))
	}
}
