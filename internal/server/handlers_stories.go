package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jobsprint/jobsprint/internal/db"
	"github.com/jobsprint/jobsprint/internal/types"
)

// storySlots is the number of interview story slots per user.
const storySlots = 10

// StoryView is a story slot plus its derived completeness.
type StoryView struct {
	db.StarStory
	Complete bool `json:"complete"`
}

// ListStoriesResponse represents the response for listing story slots.
type ListStoriesResponse struct {
	Stories  []StoryView `json:"stories"`
	Complete int         `json:"complete"`
}

// handleListStories lists the user's written story slots.
func (s *Server) handleListStories(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	stories, err := s.db.ListStarStories(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	views := make([]StoryView, 0, len(stories))
	complete := 0
	for _, story := range stories {
		done := story.IsComplete()
		if done {
			complete++
		}
		views = append(views, StoryView{StarStory: story, Complete: done})
	}

	s.jsonResponse(w, http.StatusOK, ListStoriesResponse{
		Stories:  views,
		Complete: complete,
	})
}

// handleGetStory retrieves one story slot. An unwritten slot returns an empty
// draft rather than 404.
func (s *Server) handleGetStory(w http.ResponseWriter, r *http.Request) {
	userID, ordinal, ok := s.storyParams(w, r)
	if !ok {
		return
	}

	story, err := s.db.GetStarStory(r.Context(), userID, ordinal)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if story == nil {
		story = &db.StarStory{UserID: userID, Ordinal: ordinal}
	}

	s.jsonResponse(w, http.StatusOK, StoryView{StarStory: *story, Complete: story.IsComplete()})
}

// handlePutStory writes one story slot.
func (s *Server) handlePutStory(w http.ResponseWriter, r *http.Request) {
	userID, ordinal, ok := s.storyParams(w, r)
	if !ok {
		return
	}

	var req types.StoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	story, err := s.db.UpsertStarStory(r.Context(), &db.StarStory{
		UserID:    userID,
		Ordinal:   ordinal,
		Title:     req.Title,
		Situation: req.Situation,
		Task:      req.Task,
		Action:    req.Action,
		Result:    req.Result,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, StoryView{StarStory: *story, Complete: story.IsComplete()})
}

func (s *Server) storyParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	uid, authed := s.authedUser(w, r)
	if !authed {
		return uid, 0, false
	}

	ordinal, err := strconv.Atoi(r.PathValue("ordinal"))
	if err != nil || ordinal < 1 || ordinal > storySlots {
		s.errorResponse(w, http.StatusBadRequest, "Story number must be between 1 and 10")
		return uid, 0, false
	}

	return uid, ordinal, true
}
