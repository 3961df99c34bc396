package db

import (
	"time"

	"github.com/google/uuid"
)

// Lead status values mirror the lead_status enum in PostgreSQL. A lead past
// SAVED counts as "actioned" for the day 8/9 completion predicates.
const (
	LeadStatusSaved        = "SAVED"
	LeadStatusApplied      = "APPLIED"
	LeadStatusInterviewing = "INTERVIEWING"
	LeadStatusOffer        = "OFFER"
	LeadStatusRejected     = "REJECTED"
	LeadStatusArchived     = "ARCHIVED"
)

// ValidLeadStatus reports whether s is a known lead status.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusSaved, LeadStatusApplied, LeadStatusInterviewing,
		LeadStatusOffer, LeadStatusRejected, LeadStatusArchived:
		return true
	}
	return false
}

// JobLead represents a job posting the user is tracking. The match score and
// breakdown are computed at creation time and stored alongside the lead.
type JobLead struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	Title          string          `json:"title"`
	Company        string          `json:"company"`
	SalaryMin      *int            `json:"salary_min,omitempty"`
	SalaryMax      *int            `json:"salary_max,omitempty"`
	Location       string          `json:"location,omitempty"`
	WorkType       string          `json:"work_type,omitempty"`
	Description    string          `json:"description,omitempty"`
	Status         string          `json:"status"`
	MatchScore     int             `json:"match_score"`
	MatchBreakdown map[string]bool `json:"match_breakdown,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// JobLeadCreateInput carries the fields accepted when creating a lead.
type JobLeadCreateInput struct {
	UserID         uuid.UUID
	Title          string
	Company        string
	SalaryMin      *int
	SalaryMax      *int
	Location       string
	WorkType       string
	Description    string
	MatchScore     int
	MatchBreakdown map[string]bool
}
