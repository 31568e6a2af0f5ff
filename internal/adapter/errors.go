package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionInvalid is returned when the server rejects the API key.
	// The session cannot be recovered without logging in again.
	ErrSessionInvalid = errors.New("session invalid")

	// ErrUploadNotReady is returned while an upload cannot be finalized yet.
	// It is safe to retry.
	ErrUploadNotReady = errors.New("upload not ready")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnexpectedResponse is returned when a response is not a valid
	// envelope or its payload cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// APIError is a business failure reported by the server inside the
// response envelope (status false).
type APIError struct {
	Message    string
	Code       string
	StatusCode int

	// kind is the sentinel the code was classified as, if any.
	kind error
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error: %s", e.Message)
	}
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}

// Unwrap exposes the classification so callers can match with errors.Is.
func (e *APIError) Unwrap() error {
	return e.kind
}
