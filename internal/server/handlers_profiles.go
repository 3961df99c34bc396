package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jobsprint/jobsprint/internal/db"
	"github.com/jobsprint/jobsprint/internal/server/middleware"
	"github.com/jobsprint/jobsprint/internal/types"
)

// Profile endpoints are whole-document PUTs: the client sends the complete
// profile and the server replaces the stored row. GET on a profile that was
// never written returns an empty document rather than 404.

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	profile, err := s.db.GetPreferenceProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		profile = &db.PreferenceProfile{UserID: userID}
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req types.PreferenceProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.db.UpsertPreferenceProfile(r.Context(), &db.PreferenceProfile{
		UserID:                  userID,
		TargetTitles:            req.TargetTitles,
		SalaryMinimum:           req.SalaryMinimum,
		SalaryIdeal:             req.SalaryIdeal,
		WorkLocationPreference:  req.WorkLocationPreference,
		MaxCommuteMinutes:       req.MaxCommuteMinutes,
		NonNegotiables:          req.NonNegotiables,
		WantedResponsibilities:  req.WantedResponsibilities,
		AvoidedResponsibilities: req.AvoidedResponsibilities,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleGetCareerProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	profile, err := s.db.GetCareerProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		profile = &db.CareerProfile{UserID: userID}
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handlePutCareerProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req types.CareerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.db.UpsertCareerProfile(r.Context(), &db.CareerProfile{
		UserID:          userID,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
		Tools:           req.Tools,
		YearsExperience: req.YearsExperience,
		Accomplishments: req.Accomplishments,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleGetResumeProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	profile, err := s.db.GetResumeProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		profile = &db.ResumeProfile{UserID: userID}
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handlePutResumeProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req types.ResumeProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.db.UpsertResumeProfile(r.Context(), &db.ResumeProfile{
		UserID:   userID,
		Headline: req.Headline,
		Summary:  req.Summary,
		Bullets:  req.Bullets,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleGetNetworkingProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	profile, err := s.db.GetNetworkingProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		profile = &db.NetworkingProfile{UserID: userID}
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handlePutNetworkingProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req types.NetworkingProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.db.UpsertNetworkingProfile(r.Context(), &db.NetworkingProfile{
		UserID:              userID,
		SchedulingLink:      req.SchedulingLink,
		ElevatorPitch:       req.ElevatorPitch,
		MessageTemplates:    req.MessageTemplates,
		CoffeeChatQuestions: req.CoffeeChatQuestions,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// authedUser extracts the authenticated user ID or writes a 401.
func (s *Server) authedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}
