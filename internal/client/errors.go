package client

import "errors"

var (
	// ErrMissingCredentials is returned when no session is stored and the
	// config carries no email or password to log in with.
	ErrMissingCredentials = errors.New("no stored session and no credentials configured")
)
