package validators

import (
	"context"
	"net/mail"
	"unicode/utf8"

	"github.com/MKhiriev/go-cloud-keeper/models"
)

// CredentialsValidator checks user input of the authentication flows before
// any key derivation or network call happens.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(ctx, value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if creds.Email == "" {
				return ErrEmptyEmail
			}
			if _, err := mail.ParseAddress(creds.Email); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			// registration enforces the length rule as well
			if creds.Password == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(creds.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validatePasswordChange(_ context.Context, change models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldNewPassword, FieldConfirmation}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrentPassword:
			if change.CurrentPassword == "" {
				return ErrEmptyCurrentPassword
			}
		case FieldNewPassword:
			if change.NewPassword == "" {
				return ErrEmptyPassword
			}
			if utf8.RuneCountInString(change.NewPassword) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if change.NewPassword == change.CurrentPassword {
				return ErrPasswordUnchanged
			}
		case FieldConfirmation:
			if change.NewPassword != change.ConfirmPassword {
				return ErrPasswordsMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
