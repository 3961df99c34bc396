package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferenceProfileRequest_Validation(t *testing.T) {
	minutes := 45

	valid := PreferenceProfileRequest{
		TargetTitles:           []string{"Backend Engineer", "Platform Engineer"},
		WorkLocationPreference: "remote",
		MaxCommuteMinutes:      &minutes,
		NonNegotiables:         []string{"4 weeks vacation"},
	}
	assert.NoError(t, valid.Validate())

	badLocation := PreferenceProfileRequest{WorkLocationPreference: "underwater"}
	assert.Error(t, badLocation.Validate())

	emptyTitle := PreferenceProfileRequest{TargetTitles: []string{""}}
	assert.Error(t, emptyTitle.Validate())
}

func TestCareerProfileRequest_Validation(t *testing.T) {
	years := 7

	valid := CareerProfileRequest{
		TechnicalSkills: []string{"Go", "PostgreSQL"},
		YearsExperience: &years,
	}
	assert.NoError(t, valid.Validate())

	negative := -1
	assert.Error(t, (&CareerProfileRequest{YearsExperience: &negative}).Validate())
}

func TestNetworkingProfileRequest_Validation(t *testing.T) {
	valid := NetworkingProfileRequest{
		SchedulingLink:   "https://cal.example.com/dana",
		MessageTemplates: []string{"Hi {{name}}, I noticed..."},
	}
	assert.NoError(t, valid.Validate())

	badLink := NetworkingProfileRequest{SchedulingLink: "not a url"}
	assert.Error(t, badLink.Validate())
}

func TestCreateContactRequest_Validation(t *testing.T) {
	assert.NoError(t, (&CreateContactRequest{Name: "Sam Lee"}).Validate())
	assert.Error(t, (&CreateContactRequest{Company: "Acme"}).Validate())
}

func TestStoryRequest_AllFieldsOptional(t *testing.T) {
	assert.NoError(t, (&StoryRequest{}).Validate())
	assert.NoError(t, (&StoryRequest{Situation: "partial draft"}).Validate())
}

func TestPracticeEvaluationRequest_Validation(t *testing.T) {
	valid := PracticeEvaluationRequest{Question: "Tell me about a conflict", Rating: 4}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&PracticeEvaluationRequest{Rating: 3}).Validate())
	assert.Error(t, (&PracticeEvaluationRequest{Question: "q", Rating: 6}).Validate())
	assert.Error(t, (&PracticeEvaluationRequest{Question: "q"}).Validate())
}
