package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateJobLeadRequest represents a new job lead. Salary figures and free-text
// fields are optional; the scoring engine treats missing data as
// non-evaluable rather than failing.
type CreateJobLeadRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Company     string `json:"company" validate:"required,min=1"`
	SalaryMin   *int   `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax   *int   `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	Location    string `json:"location,omitempty"`
	WorkType    string `json:"work_type,omitempty" validate:"omitempty,oneof=remote hybrid onsite flexible"`
	Description string `json:"description,omitempty"`
}

// UpdateLeadStatusRequest moves a lead through the pipeline.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Validate validates the CreateJobLeadRequest using the validator.
func (r *CreateJobLeadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateLeadStatusRequest using the validator.
func (r *UpdateLeadStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
