package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-cloud-keeper/internal/app"
	"github.com/MKhiriev/go-cloud-keeper/models"
	"github.com/go-resty/resty/v2"
)

// decodeEnvelope turns a response into the payload of a successful envelope
// or into an error. out may be nil for endpoints without payload.
func decodeEnvelope(resp *resty.Response, out any) error {
	var env models.APIResponse
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		// not an envelope; fall back to the status code
		if mapped := mapHTTPError(resp); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	if !env.Status {
		return &APIError{
			Message:    env.Message,
			Code:       env.Code,
			StatusCode: resp.StatusCode(),
			kind:       classify(resp.StatusCode(), env.Code),
		}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %v", ErrUnexpectedResponse, err)
	}
	return nil
}

func classify(statusCode int, code string) error {
	switch code {
	case app.CodeAPIKeyNotFound, app.CodeInvalidAPIKey, app.CodeUnauthorized:
		return ErrSessionInvalid
	case app.CodeUploadNotFinished, app.CodeUploadChunksMissing:
		return ErrUploadNotReady
	case app.CodeUserNotFound, app.CodeFolderNotFound, app.CodeLinkNotFound:
		return ErrNotFound
	}
	return statusError(statusCode)
}

func statusError(statusCode int) error {
	switch {
	case statusCode == http.StatusUnauthorized:
		return ErrSessionInvalid
	case statusCode == http.StatusBadRequest:
		return ErrBadRequest
	case statusCode == http.StatusNotFound:
		return ErrNotFound
	case statusCode == http.StatusTooManyRequests:
		return ErrTooManyRequests
	case statusCode >= http.StatusInternalServerError:
		return ErrInternalServerError
	}
	return nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if sentinel := statusError(resp.StatusCode()); sentinel != nil {
		return fmt.Errorf("%w: %s", sentinel, body)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
