package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLeadStatusConstants(t *testing.T) {
	statuses := []string{
		LeadStatusSaved,
		LeadStatusApplied,
		LeadStatusInterviewing,
		LeadStatusOffer,
		LeadStatusRejected,
		LeadStatusArchived,
	}

	for _, status := range statuses {
		assert.NotEmpty(t, status, "lead status constant should not be empty")
		assert.True(t, ValidLeadStatus(status), "constant should validate: %s", status)
	}
}

func TestValidLeadStatus_Rejects(t *testing.T) {
	assert.False(t, ValidLeadStatus(""))
	assert.False(t, ValidLeadStatus("saved"))
	assert.False(t, ValidLeadStatus("WITHDRAWN"))
}

func TestStarStory_IsComplete(t *testing.T) {
	story := StarStory{
		UserID:    uuid.New(),
		Ordinal:   1,
		Situation: "inherited a flaky test suite",
		Task:      "stabilize CI",
		Action:    "quarantined and rewrote the worst offenders",
		Result:    "green builds for a quarter",
	}
	assert.True(t, story.IsComplete())

	story.Result = ""
	assert.False(t, story.IsComplete())
}

func TestStarStory_TitleNotRequired(t *testing.T) {
	story := StarStory{
		Situation: "s", Task: "t", Action: "a", Result: "r",
	}
	assert.True(t, story.IsComplete(), "title is optional")
}

func TestUserType(t *testing.T) {
	user := User{
		Name:       "Dana",
		Email:      "dana@example.com",
		CurrentDay: 1,
		CreatedAt:  time.Now(),
	}

	assert.Equal(t, "Dana", user.Name)
	assert.Equal(t, 1, user.CurrentDay)
	assert.False(t, user.PasswordSet)
}

func TestCountNonEmpty(t *testing.T) {
	assert.Equal(t, 0, countNonEmpty(nil))
	assert.Equal(t, 0, countNonEmpty([]string{"", ""}))
	assert.Equal(t, 2, countNonEmpty([]string{"hello", "", "world"}))
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	assert.Equal(t, "x", nullIfEmpty("x"))
}
