package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail           = errors.New("email is required")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmptyCurrentPassword = errors.New("current password is required")
	ErrPasswordsMismatch    = errors.New("passwords do not match")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrPasswordUnchanged    = errors.New("new password equals the current one")
)
