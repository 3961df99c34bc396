package server

import (
	"encoding/json"
	"net/http"

	"github.com/jobsprint/jobsprint/internal/db"
	"github.com/jobsprint/jobsprint/internal/types"
)

// ListPracticeEvaluationsResponse represents the response for listing
// mock-interview evaluations.
type ListPracticeEvaluationsResponse struct {
	Evaluations []db.PracticeEvaluation `json:"evaluations"`
	Count       int                     `json:"count"`
}

// handleCreatePracticeEvaluation records one mock-interview self-evaluation.
func (s *Server) handleCreatePracticeEvaluation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req types.PracticeEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	eval, err := s.db.CreatePracticeEvaluation(r.Context(), userID, req.Question, req.Rating, req.Notes)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, eval)
}

// handleListPracticeEvaluations lists the user's recorded evaluations.
func (s *Server) handleListPracticeEvaluations(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	evals, err := s.db.ListPracticeEvaluations(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListPracticeEvaluationsResponse{
		Evaluations: evals,
		Count:       len(evals),
	})
}
