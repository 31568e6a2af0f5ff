// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-cloud-keeper client.
//
// The Code* constants are the machine readable identifiers the drive API
// puts into the "code" field of a failed response envelope. The adapter
// classifies them into sentinel errors; keeping them in one place keeps the
// classification and the tests in agreement.
package app

const (
	// CodeAPIKeyNotFound is returned when the API key of the session is
	// unknown to the server, e.g. after a password change elsewhere.
	CodeAPIKeyNotFound = "api_key_not_found"

	// CodeInvalidAPIKey is returned when the API key is malformed or expired.
	CodeInvalidAPIKey = "invalid_api_key"

	// CodeUnauthorized is returned when a request needs a session but none
	// was presented.
	CodeUnauthorized = "unauthorized"

	// CodeEmailOrPasswordWrong is returned by login for bad credentials.
	CodeEmailOrPasswordWrong = "email_or_password_wrong"

	// CodeEnter2FA is returned by login when the account requires a second
	// factor and none was supplied.
	CodeEnter2FA = "enter_2fa"

	// CodeWrong2FA is returned by login for a bad second factor.
	CodeWrong2FA = "wrong_2fa"

	// CodeEmailAddressInUse is returned by register for a taken email.
	CodeEmailAddressInUse = "email_address_already_in_use"

	// CodeUploadNotFinished is returned by upload/done while chunks are
	// still being committed by the storage backend.
	CodeUploadNotFinished = "upload_not_finished"

	// CodeUploadChunksMissing is returned by upload/done when the chunk
	// count does not match yet.
	CodeUploadChunksMissing = "upload_chunks_missing"

	// CodeUserNotFound is returned by the public key lookup for an unknown
	// email.
	CodeUserNotFound = "user_not_found"

	// CodeFolderNotFound is returned when a listing or link targets a
	// folder that does not exist.
	CodeFolderNotFound = "folder_not_found"

	// CodeLinkNotFound is returned for an unknown or disabled link.
	CodeLinkNotFound = "link_not_found"

	// CodeWrongLinkPassword is returned when the hashed link password does
	// not match.
	CodeWrongLinkPassword = "wrong_password"
)
