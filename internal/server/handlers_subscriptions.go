package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jobsprint/jobsprint/internal/billing"
	"github.com/jobsprint/jobsprint/internal/db"
	"github.com/jobsprint/jobsprint/internal/types"
)

// handleActivate redeems an activation code for the authenticated user. The
// code is either a reusable master tier code from configuration or a minted
// single-use code from the activation_codes table.
func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req types.ActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	existing, err := s.db.GetLatestSubscription(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if existing != nil && billing.CheckActive(existing.Status, existing.EndDate, time.Now()).IsActive {
		s.errorResponse(w, http.StatusConflict, "Subscription is already active")
		return
	}

	var sub *db.Subscription
	if tier, matched := s.masterCodes.Match(req.Code); matched {
		sub, err = s.db.CreateSubscription(r.Context(), userID, tier)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	} else {
		sub, err = s.db.RedeemActivationCode(r.Context(), req.Code, userID)
		if err != nil {
			status := HTTPStatus(err)
			if status == http.StatusUnprocessableEntity {
				err = &ErrInvalidActivationCode{}
			}
			s.errorResponse(w, status, err.Error())
			return
		}
	}

	s.invalidateEntitlement(r.Context(), userID)
	s.logger.Info("subscription activated",
		zap.String("user_id", userID.String()),
		zap.String("tier", string(sub.Tier)),
	)

	s.jsonResponse(w, http.StatusCreated, s.subscriptionView(sub))
}

// handleGetSubscription returns the user's subscription at its effective
// status, with the reactivation offer when one applies.
func (s *Server) handleGetSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	sub, err := s.db.GetLatestSubscription(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if sub == nil {
		s.errorResponse(w, http.StatusNotFound, "No subscription: activation required")
		return
	}

	if billing.NeedsLazyCorrection(sub.Status, sub.EndDate, time.Now()) {
		if err := s.db.MarkSubscriptionReadOnly(r.Context(), sub.ID); err != nil {
			s.logger.Warn("lazy subscription correction failed", zap.Error(err))
		}
	}

	s.jsonResponse(w, http.StatusOK, s.subscriptionView(sub))
}

// handleReactivate redeems a minted reactivation code for a lapsed STARTER or
// PRO subscription. Stays outside the entitlement gate: the whole point is
// that the caller's subscription is no longer active.
func (s *Server) handleReactivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req types.ReactivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	sub, err := s.db.GetLatestSubscription(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if sub == nil {
		s.errorResponse(w, http.StatusNotFound, "No subscription to reactivate")
		return
	}

	offer := billing.ReactivationFor(sub.Tier, sub.Status, sub.EndDate, time.Now())
	if !offer.Eligible {
		reason := "subscription is still active"
		if !sub.Tier.ReactivationEligible() {
			reason = sub.Tier.DisplayName() + " subscriptions do not qualify"
		}
		err := &ErrReactivationNotAllowed{Reason: reason}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	updated, err := s.db.RedeemActivationCode(r.Context(), req.Code, userID)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusUnprocessableEntity {
			err = &ErrInvalidActivationCode{}
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	s.invalidateEntitlement(r.Context(), userID)
	s.logger.Info("subscription reactivated",
		zap.String("user_id", userID.String()),
		zap.String("tier", string(updated.Tier)),
	)

	s.jsonResponse(w, http.StatusOK, s.subscriptionView(updated))
}

// subscriptionView builds the client-facing subscription document. The
// status shown is the effective status, never the raw stored one.
func (s *Server) subscriptionView(sub *db.Subscription) types.SubscriptionResponse {
	now := time.Now()
	effective := billing.EffectiveStatus(sub.Status, sub.EndDate, now)

	view := types.SubscriptionResponse{
		Tier:            string(sub.Tier),
		Status:          string(effective),
		StartDate:       sub.StartDate,
		EndDate:         sub.EndDate,
		HasAI:           sub.Tier.HasAI(),
		HasBonusModules: sub.Tier.HasBonusModules(),
	}

	if offer := billing.ReactivationFor(sub.Tier, sub.Status, sub.EndDate, now); offer.Eligible {
		view.ReactivationOffer = &types.ReactivationOffer{
			Tier:            string(sub.Tier),
			DiscountPercent: offer.DiscountPercent,
			ExtensionDays:   offer.ExtensionDays,
		}
	}

	return view
}
