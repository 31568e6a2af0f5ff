// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-cloud-keeper/internal/adapter"
	"github.com/MKhiriev/go-cloud-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case app.CodeEmailOrPasswordWrong:
			return ErrWrongCredentials
		case app.CodeEnter2FA:
			return ErrTwoFactorRequired
		case app.CodeWrong2FA:
			return ErrWrongTwoFactorCode
		case app.CodeEmailAddressInUse:
			return ErrEmailInUse
		case app.CodeUserNotFound:
			return ErrRecipientNotFound
		case app.CodeLinkNotFound:
			return ErrLinkNotFound
		case app.CodeWrongLinkPassword:
			return ErrWrongLinkPassword
		}
	}

	switch {
	case errors.Is(err, adapter.ErrSessionInvalid):
		return ErrSessionExpired
	case errors.Is(err, adapter.ErrUploadNotReady):
		return ErrUploadNotFinalized
	}

	return err
}
