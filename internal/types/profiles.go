package types

import (
	"github.com/go-playground/validator/v10"
)

// PreferenceProfileRequest replaces the user's stated job preferences.
type PreferenceProfileRequest struct {
	TargetTitles            []string `json:"target_titles" validate:"max=10,dive,min=1"`
	SalaryMinimum           *int     `json:"salary_minimum,omitempty" validate:"omitempty,min=0"`
	SalaryIdeal             *int     `json:"salary_ideal,omitempty" validate:"omitempty,min=0"`
	WorkLocationPreference  string   `json:"work_location_preference,omitempty" validate:"omitempty,oneof=remote hybrid onsite flexible"`
	MaxCommuteMinutes       *int     `json:"max_commute_minutes,omitempty" validate:"omitempty,min=0,max=300"`
	NonNegotiables          []string `json:"non_negotiables" validate:"max=20,dive,min=1"`
	WantedResponsibilities  []string `json:"wanted_responsibilities" validate:"max=20,dive,min=1"`
	AvoidedResponsibilities []string `json:"avoided_responsibilities" validate:"max=20,dive,min=1"`
}

// CareerProfileRequest replaces the user's skill inventory.
type CareerProfileRequest struct {
	TechnicalSkills []string `json:"technical_skills" validate:"max=50,dive,min=1"`
	SoftSkills      []string `json:"soft_skills" validate:"max=50,dive,min=1"`
	Tools           []string `json:"tools" validate:"max=50,dive,min=1"`
	YearsExperience *int     `json:"years_experience,omitempty" validate:"omitempty,min=0,max=60"`
	Accomplishments []string `json:"accomplishments" validate:"max=20,dive,min=1"`
}

// ResumeProfileRequest replaces the resume draft.
type ResumeProfileRequest struct {
	Headline string   `json:"headline,omitempty" validate:"omitempty,max=200"`
	Summary  string   `json:"summary,omitempty" validate:"omitempty,max=2000"`
	Bullets  []string `json:"bullets" validate:"max=30,dive,min=1"`
}

// NetworkingProfileRequest replaces the outreach setup.
type NetworkingProfileRequest struct {
	SchedulingLink      string   `json:"scheduling_link,omitempty" validate:"omitempty,url"`
	ElevatorPitch       string   `json:"elevator_pitch,omitempty" validate:"omitempty,max=2000"`
	MessageTemplates    []string `json:"message_templates" validate:"max=10,dive,min=1"`
	CoffeeChatQuestions []string `json:"coffee_chat_questions" validate:"max=20,dive,min=1"`
}

// CreateContactRequest adds a person to the outreach list.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=1"`
	Company string `json:"company,omitempty"`
	Role    string `json:"role,omitempty"`
}

// StoryRequest writes one interview story slot. All STAR fields are optional
// so drafts can be saved incrementally; completion is judged separately.
type StoryRequest struct {
	Title     string `json:"title,omitempty" validate:"omitempty,max=200"`
	Situation string `json:"situation,omitempty"`
	Task      string `json:"task,omitempty"`
	Action    string `json:"action,omitempty"`
	Result    string `json:"result,omitempty"`
}

// PracticeEvaluationRequest records one mock-interview self-evaluation.
type PracticeEvaluationRequest struct {
	Question string `json:"question" validate:"required,min=1"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Notes    string `json:"notes,omitempty"`
}

// Validate validates the PreferenceProfileRequest using the validator.
func (r *PreferenceProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CareerProfileRequest using the validator.
func (r *CareerProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ResumeProfileRequest using the validator.
func (r *ResumeProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the NetworkingProfileRequest using the validator.
func (r *NetworkingProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateContactRequest using the validator.
func (r *CreateContactRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the StoryRequest using the validator.
func (r *StoryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the PracticeEvaluationRequest using the validator.
func (r *PracticeEvaluationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
