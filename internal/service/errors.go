package service

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionExpired is returned after the server rejected the API key.
	// The local session has been wiped by then.
	ErrSessionExpired = errors.New("session expired, log in again")

	ErrWrongCredentials   = errors.New("wrong email or password")
	ErrWrongPassword      = errors.New("wrong current password")
	ErrTwoFactorRequired  = errors.New("two factor code required")
	ErrWrongTwoFactorCode = errors.New("wrong two factor code")
	ErrEmailInUse         = errors.New("email address already in use")

	ErrKeyPairUnavailable = errors.New("key pair unavailable")
	ErrRecipientNotFound  = errors.New("recipient has no public key")

	ErrUnsupportedListingSource = errors.New("unsupported listing source")
	ErrEmptyItemName            = errors.New("item name is empty")

	ErrMissingLinkKey    = errors.New("link key is missing")
	ErrLinkNotFound      = errors.New("link not found")
	ErrWrongLinkPassword = errors.New("wrong link password")
	ErrEmptyLinkItems    = errors.New("no items to add to the link")

	ErrUploadNotFinalized = errors.New("upload could not be finalized")
)
