package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jobsprint/jobsprint/internal/billing"
)

// Subscription represents one entitlement window for a user. Historical rows
// are kept; only the most recent row gates access.
type Subscription struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Tier      billing.Tier   `json:"tier"`
	Status    billing.Status `json:"status"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ActivationCode represents a minted single-use code. The three tier-wide
// master codes live in config, not here.
type ActivationCode struct {
	Code      string       `json:"code"`
	Tier      billing.Tier `json:"tier"`
	IsUsed    bool         `json:"is_used"`
	// ReactivationFor is set when the code was minted for a specific user's
	// discounted reactivation.
	ReactivationFor *uuid.UUID `json:"reactivation_for,omitempty"`
	UsedBy          *uuid.UUID `json:"used_by,omitempty"`
	UsedAt          *time.Time `json:"used_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
