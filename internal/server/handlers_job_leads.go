package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jobsprint/jobsprint/internal/db"
	"github.com/jobsprint/jobsprint/internal/matching"
	"github.com/jobsprint/jobsprint/internal/server/middleware"
	"github.com/jobsprint/jobsprint/internal/types"
)

// ListJobLeadsResponse represents the response for listing job leads
type ListJobLeadsResponse struct {
	Leads []db.JobLead `json:"leads"`
	Count int          `json:"count"`
}

// handleCreateJobLead saves a new lead. The match score and per-factor
// breakdown are computed here, against whatever preference and career
// profiles the user has at this moment, and stored with the lead.
func (s *Server) handleCreateJobLead(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CreateJobLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.scoreJob(r.Context(), userID, matching.Job{
		Title:       req.Title,
		Company:     req.Company,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Location:    req.Location,
		WorkType:    req.WorkType,
		Description: req.Description,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	lead, err := s.db.CreateJobLead(r.Context(), &db.JobLeadCreateInput{
		UserID:         userID,
		Title:          req.Title,
		Company:        req.Company,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Location:       req.Location,
		WorkType:       req.WorkType,
		Description:    req.Description,
		MatchScore:     result.Score,
		MatchBreakdown: result.Breakdown,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, lead)
}

// scoreJob runs the matching engine for one job against the user's current
// profiles. Missing profiles are scored as empty, not as errors.
func (s *Server) scoreJob(ctx context.Context, userID uuid.UUID, job matching.Job) (matching.Result, error) {
	prefs := matching.Preferences{}
	career := matching.CareerProfile{}

	prefProfile, err := s.db.GetPreferenceProfile(ctx, userID)
	if err != nil {
		return matching.Result{}, err
	}
	if prefProfile != nil {
		prefs = matching.Preferences{
			SalaryMinimum:           prefProfile.SalaryMinimum,
			WorkLocationPreference:  prefProfile.WorkLocationPreference,
			MaxCommuteMinutes:       prefProfile.MaxCommuteMinutes,
			NonNegotiables:          prefProfile.NonNegotiables,
			WantedResponsibilities:  prefProfile.WantedResponsibilities,
			AvoidedResponsibilities: prefProfile.AvoidedResponsibilities,
		}
	}

	careerProfile, err := s.db.GetCareerProfile(ctx, userID)
	if err != nil {
		return matching.Result{}, err
	}
	if careerProfile != nil {
		career = matching.CareerProfile{
			TechnicalSkills: careerProfile.TechnicalSkills,
			SoftSkills:      careerProfile.SoftSkills,
			Tools:           careerProfile.Tools,
		}
	}

	return matching.Score(job, prefs, career, matching.DefaultWeights()), nil
}

// handleListJobLeads lists the user's leads, optionally filtered by status.
func (s *Server) handleListJobLeads(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && !db.ValidLeadStatus(status) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown lead status: "+status)
		return
	}

	leads, err := s.db.ListJobLeads(r.Context(), userID, status)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListJobLeadsResponse{
		Leads: leads,
		Count: len(leads),
	})
}

// handleGetJobLead retrieves one lead owned by the authenticated user.
func (s *Server) handleGetJobLead(w http.ResponseWriter, r *http.Request) {
	lead, ok := s.ownedJobLead(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, lead)
}

// handleUpdateJobLeadStatus moves a lead through the pipeline.
func (s *Server) handleUpdateJobLeadStatus(w http.ResponseWriter, r *http.Request) {
	lead, ok := s.ownedJobLead(w, r)
	if !ok {
		return
	}

	var req types.UpdateLeadStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if !db.ValidLeadStatus(req.Status) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown lead status: "+req.Status)
		return
	}

	updated, err := s.db.UpdateJobLeadStatus(r.Context(), lead.ID, req.Status)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteJobLead removes a lead.
func (s *Server) handleDeleteJobLead(w http.ResponseWriter, r *http.Request) {
	lead, ok := s.ownedJobLead(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteJobLead(r.Context(), lead.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Job lead deleted"})
}

// ownedJobLead loads the lead named in the path and verifies ownership.
// A lead belonging to another user is reported as not found.
func (s *Server) ownedJobLead(w http.ResponseWriter, r *http.Request) (*db.JobLead, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	leadID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job lead ID")
		return nil, false
	}

	lead, err := s.db.GetJobLead(r.Context(), leadID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if lead == nil || lead.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "Job lead not found")
		return nil, false
	}

	return lead, true
}
