package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jobsprint/jobsprint/internal/cache"
	"github.com/jobsprint/jobsprint/internal/db"
	"github.com/jobsprint/jobsprint/internal/program"
	"github.com/jobsprint/jobsprint/internal/server/middleware"
)

// ProgressResponse represents the full 14-day board for a user.
type ProgressResponse struct {
	CurrentDay int              `json:"current_day"`
	Days       []db.DayProgress `json:"days"`
}

// CompleteDayResponse reports the outcome of a completion attempt. An
// ineligible day is not an error: Completed is false and Requirement names
// what is missing.
type CompleteDayResponse struct {
	Completed   bool            `json:"completed"`
	Requirement string          `json:"requirement,omitempty"`
	Day         *db.DayProgress `json:"day,omitempty"`
}

// handleGetProgress returns all 14 day rows plus the current day pointer.
func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if s.cache != nil {
		var cached ProgressResponse
		if err := s.cache.GetProgress(r.Context(), userID, &cached); err == nil {
			s.jsonResponse(w, http.StatusOK, cached)
			return
		} else if err != cache.ErrCacheMiss {
			s.logger.Warn("progress cache read failed", zap.Error(err))
		}
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if user == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	days, err := s.db.ListDayProgress(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	response := ProgressResponse{
		CurrentDay: user.CurrentDay,
		Days:       days,
	}

	if s.cache != nil {
		if err := s.cache.SetProgress(r.Context(), userID, response); err != nil {
			s.logger.Warn("progress cache write failed", zap.Error(err))
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleStartDay moves an unlocked day to IN_PROGRESS.
func (s *Server) handleStartDay(w http.ResponseWriter, r *http.Request) {
	userID, day, ok := s.progressParams(w, r)
	if !ok {
		return
	}

	current, err := s.db.GetDayProgress(r.Context(), userID, day)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if current == nil {
		s.errorResponse(w, http.StatusNotFound, "Day not found")
		return
	}
	if !program.CanStart(current.Status) {
		s.errorResponse(w, http.StatusConflict, "Day is "+string(current.Status)+" and cannot be started")
		return
	}

	updated, err := s.db.StartDay(r.Context(), userID, day)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.invalidateProgress(r, userID)
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleCompleteDay checks the day's completion predicate against the user's
// durable state and, when eligible, runs the completion transition.
func (s *Server) handleCompleteDay(w http.ResponseWriter, r *http.Request) {
	userID, day, ok := s.progressParams(w, r)
	if !ok {
		return
	}

	current, err := s.db.GetDayProgress(r.Context(), userID, day)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if current == nil {
		s.errorResponse(w, http.StatusNotFound, "Day not found")
		return
	}

	// Completing a completed day is an idempotent no-op.
	if current.Status == program.StatusCompleted {
		s.jsonResponse(w, http.StatusOK, CompleteDayResponse{Completed: true, Day: current})
		return
	}
	if !program.CanComplete(current.Status) {
		s.errorResponse(w, http.StatusConflict, "Day is "+string(current.Status)+" and cannot be completed")
		return
	}

	snapshot, err := s.db.LoadSnapshot(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	eligibility := program.CompletionCheck(day, snapshot)
	if !eligibility.Eligible {
		s.jsonResponse(w, http.StatusOK, CompleteDayResponse{
			Completed:   false,
			Requirement: eligibility.Requirement,
			Day:         current,
		})
		return
	}

	updated, err := s.db.CompleteDay(r.Context(), userID, day)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.invalidateProgress(r, userID)
	s.jsonResponse(w, http.StatusOK, CompleteDayResponse{Completed: true, Day: updated})
}

// progressParams extracts the authenticated user and the {day} path value.
func (s *Server) progressParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	uid, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uid, 0, false
	}

	day, err := strconv.Atoi(r.PathValue("day"))
	if err != nil || !program.ValidDay(day) {
		s.errorResponse(w, http.StatusBadRequest, "Day must be between 1 and 14")
		return uid, 0, false
	}

	return uid, day, true
}

func (s *Server) invalidateProgress(r *http.Request, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProgress(r.Context(), userID); err != nil {
		s.logger.Warn("progress cache invalidation failed", zap.Error(err))
	}
}
