package validator

import (
	"testing"

	domainerrors "leadforge/internal/domain/errors"
	"leadforge/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"required,min=3"`
	Status string `json:"status" validate:"omitempty,lead_status"`
}

func TestValidate(t *testing.T) {
	cv := New()

	tests := []struct {
		name        string
		input       sampleRequest
		wantErr     bool
		wantDetails string
	}{
		{
			name:  "valid",
			input: sampleRequest{Email: "a@b.co", Name: "abc", Status: "Followed Up"},
		},
		{
			name:        "missing email uses json name",
			input:       sampleRequest{Name: "abc"},
			wantErr:     true,
			wantDetails: "email is required",
		},
		{
			name:        "short name",
			input:       sampleRequest{Email: "a@b.co", Name: "ab"},
			wantErr:     true,
			wantDetails: "name must be at least 3 characters",
		},
		{
			name:        "unknown lead status",
			input:       sampleRequest{Email: "a@b.co", Name: "abc", Status: "Maybe"},
			wantErr:     true,
			wantDetails: "status is not a valid lead status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantDetails, appErr.Details())
		})
	}
}
