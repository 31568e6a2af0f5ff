package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the account email of credentials.
	FieldEmail = "email"

	// FieldPassword targets the password of credentials.
	FieldPassword = "password"

	// FieldCurrentPassword targets the current password of a password change.
	FieldCurrentPassword = "current_password"

	// FieldNewPassword targets the new password of a password change,
	// including its minimum length.
	FieldNewPassword = "new_password"

	// FieldConfirmation targets the repeated new password.
	FieldConfirmation = "confirmation"
)

// MinPasswordLength is the shortest password accepted for registration and
// password changes.
const MinPasswordLength = 10
