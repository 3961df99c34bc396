package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateJobLeadRequest_Validation(t *testing.T) {
	salary := 95000

	tests := []struct {
		name    string
		request CreateJobLeadRequest
		wantErr bool
	}{
		{
			name: "valid minimal request",
			request: CreateJobLeadRequest{
				Title:   "Backend Engineer",
				Company: "Acme",
			},
			wantErr: false,
		},
		{
			name: "valid full request",
			request: CreateJobLeadRequest{
				Title:       "Backend Engineer",
				Company:     "Acme",
				SalaryMin:   &salary,
				Location:    "Toronto",
				WorkType:    "remote",
				Description: "Build and operate Go services.",
			},
			wantErr: false,
		},
		{
			name: "missing title",
			request: CreateJobLeadRequest{
				Company: "Acme",
			},
			wantErr: true,
		},
		{
			name: "missing company",
			request: CreateJobLeadRequest{
				Title: "Backend Engineer",
			},
			wantErr: true,
		},
		{
			name: "unknown work type",
			request: CreateJobLeadRequest{
				Title:    "Backend Engineer",
				Company:  "Acme",
				WorkType: "nomadic",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateLeadStatusRequest_Validation(t *testing.T) {
	assert.NoError(t, (&UpdateLeadStatusRequest{Status: "APPLIED"}).Validate())
	assert.Error(t, (&UpdateLeadStatusRequest{}).Validate())
}
