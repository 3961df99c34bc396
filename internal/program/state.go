// Package program defines the 14-day progression state machine.
//
// Day status graph (per day):
//
//	LOCKED ──► UNLOCKED ──► IN_PROGRESS ──► COMPLETED
//	               └────────────────────────────┘
//
// Day 1 starts UNLOCKED at account creation; day N (2..14) moves from LOCKED
// to UNLOCKED only when day N-1 reaches COMPLETED. COMPLETED is terminal.
package program

import "fmt"

// Status values mirror the day_status enum in PostgreSQL.
type Status string

const (
	StatusLocked     Status = "LOCKED"
	StatusUnlocked   Status = "UNLOCKED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Program day bounds.
const (
	FirstDay = 1
	LastDay  = 14
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusLocked, StatusUnlocked, StatusInProgress, StatusCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown day status %q", s)
}

// ValidDay reports whether day falls inside the program.
func ValidDay(day int) bool {
	return day >= FirstDay && day <= LastDay
}

// CanStart reports whether a day in the given status may transition to
// IN_PROGRESS.
func CanStart(s Status) bool {
	return s == StatusUnlocked
}

// CanComplete reports whether a day in the given status may transition to
// COMPLETED. Completing an already-completed day is treated as an idempotent
// no-op by the caller, not a transition.
func CanComplete(s Status) bool {
	return s == StatusUnlocked || s == StatusInProgress
}
