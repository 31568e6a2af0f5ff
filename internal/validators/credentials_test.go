// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-cloud-keeper/models"
)

func TestCredentialsValidator_Credentials(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		creds  models.Credentials
		fields []string
		want   error
	}{
		{"valid", models.Credentials{Email: "alice@example.com", Password: "pw"}, nil, nil},
		{"empty email", models.Credentials{Password: "pw"}, nil, ErrEmptyEmail},
		{"bad email", models.Credentials{Email: "alice", Password: "pw"}, nil, ErrInvalidEmail},
		{"empty password", models.Credentials{Email: "alice@example.com"}, nil, ErrEmptyPassword},
		{"short password for registration", models.Credentials{Email: "a@b.c", Password: "short"}, []string{FieldEmail, FieldNewPassword}, ErrPasswordTooShort},
		{"long password for registration", models.Credentials{Email: "a@b.c", Password: "long-enough-pw"}, []string{FieldEmail, FieldNewPassword}, nil},
		{"unknown field", models.Credentials{}, []string{"nope"}, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCredentialsValidator_PasswordChange(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		change models.PasswordChange
		want   error
	}{
		{"valid", models.PasswordChange{CurrentPassword: "old-password", NewPassword: "new-password-1", ConfirmPassword: "new-password-1"}, nil},
		{"empty current", models.PasswordChange{NewPassword: "new-password-1", ConfirmPassword: "new-password-1"}, ErrEmptyCurrentPassword},
		{"empty new", models.PasswordChange{CurrentPassword: "old-password"}, ErrEmptyPassword},
		{"too short", models.PasswordChange{CurrentPassword: "old-password", NewPassword: "short", ConfirmPassword: "short"}, ErrPasswordTooShort},
		{"multibyte counts runes", models.PasswordChange{CurrentPassword: "old-password", NewPassword: "ääääääääää", ConfirmPassword: "ääääääääää"}, nil},
		{"unchanged", models.PasswordChange{CurrentPassword: "same-password", NewPassword: "same-password", ConfirmPassword: "same-password"}, ErrPasswordUnchanged},
		{"mismatch", models.PasswordChange{CurrentPassword: "old-password", NewPassword: "new-password-1", ConfirmPassword: "new-password-2"}, ErrPasswordsMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.change)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCredentialsValidator_UnsupportedType(t *testing.T) {
	err := NewCredentialsValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
