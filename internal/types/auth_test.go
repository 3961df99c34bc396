package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr bool
	}{
		{
			name: "valid request with password",
			request: RegisterRequest{
				Name:     "Dana Smith",
				Email:    "dana@example.com",
				Password: "password123",
			},
			wantErr: false,
		},
		{
			name: "valid request without password",
			request: RegisterRequest{
				Name:  "Dana Smith",
				Email: "dana@example.com",
			},
			wantErr: false,
		},
		{
			name: "missing name",
			request: RegisterRequest{
				Email: "dana@example.com",
			},
			wantErr: true,
		},
		{
			name: "invalid email",
			request: RegisterRequest{
				Name:  "Dana Smith",
				Email: "not-an-email",
			},
			wantErr: true,
		},
		{
			name: "password too short",
			request: RegisterRequest{
				Name:     "Dana Smith",
				Email:    "dana@example.com",
				Password: "short",
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

func TestLoginRequest_Validation(t *testing.T) {
	valid := LoginRequest{Email: "dana@example.com", Password: "password123"}
	assert.NoError(t, valid.Validate())

	missing := LoginRequest{Email: "dana@example.com"}
	assert.Error(t, missing.Validate())
}

func TestMagicLinkRequest_Validation(t *testing.T) {
	assert.NoError(t, (&MagicLinkRequest{Email: "dana@example.com"}).Validate())
	assert.Error(t, (&MagicLinkRequest{Email: ""}).Validate())
	assert.Error(t, (&MagicLinkRequest{Email: "nope"}).Validate())
}

func TestActivateRequest_Validation(t *testing.T) {
	assert.NoError(t, (&ActivateRequest{Code: "SPRINT-START-2026"}).Validate())
	assert.Error(t, (&ActivateRequest{}).Validate())
	assert.Error(t, (&ActivateRequest{Code: "ab"}).Validate())
}

func TestRegisterRequest_JSONRoundTrip(t *testing.T) {
	body := []byte(`{"name":"Dana Smith","email":"dana@example.com"}`)

	var req RegisterRequest
	require.NoError(t, json.Unmarshal(body, &req))
	assert.Equal(t, "Dana Smith", req.Name)
	assert.Empty(t, req.Password)
	assert.NoError(t, req.Validate())
}
