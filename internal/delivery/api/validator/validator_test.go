package validator

import (
	"testing"

	domainerrors "greenscore/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registration struct {
	PhoneNumber string `json:"phone_number" validate:"required,phone10"`
	Name        string `json:"name" validate:"required"`
}

type product struct {
	Cost *float64 `json:"cost" validate:"required,gte=0"`
	Ref  string   `json:"ref" validate:"required,uuid"`
}

func TestRequestValidator(t *testing.T) {
	v := New()
	zero := 0.0
	negative := -1.0

	tests := []struct {
		name        string
		input       any
		wantDetails string
	}{
		{name: "valid registration", input: &registration{PhoneNumber: "0912345678", Name: "Mia"}},
		{name: "short phone", input: &registration{PhoneNumber: "12345", Name: "Mia"}, wantDetails: "phone_number must be exactly 10 digits"},
		{name: "missing name", input: &registration{PhoneNumber: "0912345678"}, wantDetails: "name is required"},
		{name: "zero cost allowed", input: &product{Cost: &zero, Ref: "7b0b8a2e-4d6c-4e5f-9a1b-2c3d4e5f6a7b"}},
		{name: "missing cost", input: &product{Ref: "7b0b8a2e-4d6c-4e5f-9a1b-2c3d4e5f6a7b"}, wantDetails: "cost is required"},
		{name: "negative cost", input: &product{Cost: &negative, Ref: "7b0b8a2e-4d6c-4e5f-9a1b-2c3d4e5f6a7b"}, wantDetails: "cost must be >= 0"},
		{name: "malformed uuid", input: &product{Cost: &zero, Ref: "not-a-uuid"}, wantDetails: "ref must be a UUID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantDetails == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 422, appErr.HTTPCode())
			assert.Contains(t, appErr.Details(), tt.wantDetails)
		})
	}
}
