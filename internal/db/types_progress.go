package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jobsprint/jobsprint/internal/program"
)

// DayProgress represents one of the 14 per-user program days. All 14 rows are
// created at account creation; LOCKED is an explicit status, never a missing
// row.
type DayProgress struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"user_id"`
	Day         int            `json:"day"`
	Status      program.Status `json:"status"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
