package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jobsprint/jobsprint/internal/db"
	"github.com/jobsprint/jobsprint/internal/types"
)

// ListContactsResponse represents the response for listing contacts
type ListContactsResponse struct {
	Contacts []db.NetworkingContact `json:"contacts"`
	Count    int                    `json:"count"`
	Messaged int                    `json:"messaged"`
}

// handleListContacts lists the user's outreach contacts with a messaged count.
func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	contacts, err := s.db.ListContacts(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	messaged := 0
	for _, c := range contacts {
		if c.MessageSent {
			messaged++
		}
	}

	s.jsonResponse(w, http.StatusOK, ListContactsResponse{
		Contacts: contacts,
		Count:    len(contacts),
		Messaged: messaged,
	})
}

// handleCreateContact adds a person to the outreach list.
func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return
	}

	var req types.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	contact, err := s.db.CreateContact(r.Context(), userID, req.Name, req.Company, req.Role)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, contact)
}

// handleContactMessageSent flags a contact as messaged. The flag feeds the
// day 10 and 11 outreach thresholds; flagging twice is a no-op.
func (s *Server) handleContactMessageSent(w http.ResponseWriter, r *http.Request) {
	contact, ok := s.ownedContact(w, r)
	if !ok {
		return
	}

	updated, err := s.db.MarkContactMessaged(r.Context(), contact.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteContact removes a contact.
func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	contact, ok := s.ownedContact(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteContact(r.Context(), contact.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Contact deleted"})
}

// ownedContact loads the contact named in the path and verifies ownership.
func (s *Server) ownedContact(w http.ResponseWriter, r *http.Request) (*db.NetworkingContact, bool) {
	userID, ok := s.authedUser(w, r)
	if !ok {
		return nil, false
	}

	contactID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid contact ID")
		return nil, false
	}

	contact, err := s.db.GetContact(r.Context(), contactID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if contact == nil || contact.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "Contact not found")
		return nil, false
	}

	return contact, true
}
