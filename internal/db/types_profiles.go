package db

import (
	"time"

	"github.com/google/uuid"
)

// PreferenceProfile holds the user's stated job preferences. One per user,
// mutable until the subscription read-only lock.
type PreferenceProfile struct {
	UserID                  uuid.UUID   `json:"user_id"`
	TargetTitles            StringArray `json:"target_titles"`
	SalaryMinimum           *int        `json:"salary_minimum,omitempty"`
	SalaryIdeal             *int        `json:"salary_ideal,omitempty"`
	WorkLocationPreference  string      `json:"work_location_preference,omitempty"`
	MaxCommuteMinutes       *int        `json:"max_commute_minutes,omitempty"`
	NonNegotiables          StringArray `json:"non_negotiables"`
	WantedResponsibilities  StringArray `json:"wanted_responsibilities"`
	AvoidedResponsibilities StringArray `json:"avoided_responsibilities"`
	UpdatedAt               time.Time   `json:"updated_at"`
}

// CareerProfile holds the user's skill inventory. One per user.
type CareerProfile struct {
	UserID          uuid.UUID   `json:"user_id"`
	TechnicalSkills StringArray `json:"technical_skills"`
	SoftSkills      StringArray `json:"soft_skills"`
	Tools           StringArray `json:"tools"`
	YearsExperience *int        `json:"years_experience,omitempty"`
	Accomplishments StringArray `json:"accomplishments"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// ResumeProfile holds the resume draft built during day 4.
type ResumeProfile struct {
	UserID    uuid.UUID   `json:"user_id"`
	Headline  string      `json:"headline,omitempty"`
	Summary   string      `json:"summary,omitempty"`
	Bullets   StringArray `json:"bullets"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NetworkingProfile holds the outreach setup built during days 6-7.
type NetworkingProfile struct {
	UserID             uuid.UUID   `json:"user_id"`
	SchedulingLink     string      `json:"scheduling_link,omitempty"`
	ElevatorPitch      string      `json:"elevator_pitch,omitempty"`
	MessageTemplates   StringArray `json:"message_templates"`
	CoffeeChatQuestions StringArray `json:"coffee_chat_questions"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// NetworkingContact is one person in the user's outreach list.
type NetworkingContact struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Company     string    `json:"company,omitempty"`
	Role        string    `json:"role,omitempty"`
	MessageSent bool      `json:"message_sent"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StarStory is one of the ten interview stories built during day 12. A story
// is complete when all four STAR fields are non-empty.
type StarStory struct {
	UserID    uuid.UUID `json:"user_id"`
	Ordinal   int       `json:"ordinal"` // 1-10
	Title     string    `json:"title,omitempty"`
	Situation string    `json:"situation,omitempty"`
	Task      string    `json:"task,omitempty"`
	Action    string    `json:"action,omitempty"`
	Result    string    `json:"result,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsComplete reports whether all four STAR fields are filled.
func (s StarStory) IsComplete() bool {
	return s.Situation != "" && s.Task != "" && s.Action != "" && s.Result != ""
}

// PracticeEvaluation is one recorded mock-interview self-evaluation (day 13).
type PracticeEvaluation struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Question  string    `json:"question"`
	Rating    int       `json:"rating"` // 1-5 self rating
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
