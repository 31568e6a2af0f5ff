// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client services
// and the drive API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the REST protocol. Every endpoint answers with the envelope
// {status, message, code, data}. A failed envelope is returned as an
// [*APIError] that also matches one of the sentinels of this package
// ([ErrSessionInvalid], [ErrUploadNotReady], [ErrNotFound], ...) with
// [errors.Is]. Responses that are not envelopes are mapped from their HTTP
// status code by mapHTTPError.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cloud-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the drive API. Implementations
// handle serialisation, the API key header and error classification.
// Every payload that crosses it is already encrypted.
type ServerAdapter interface {
	// SetAPIKey stores the API key attached to all subsequent requests.
	SetAPIKey(apiKey string)

	// APIKey returns the API key currently held, or an empty string.
	APIKey() string

	// AuthInfo fetches the auth version and salt of an account. It is the
	// first step of every login.
	AuthInfo(ctx context.Context, email string) (models.AuthInfo, error)

	// Register creates an account from a derived auth secret.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login exchanges the derived auth secret for an API key. The adapter
	// stores the key via SetAPIKey on success.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// MasterKeys uploads the encrypted ring and returns the server copy.
	MasterKeys(ctx context.Context, encryptedRing string) (models.MasterKeysResponse, error)

	KeyPairInfo(ctx context.Context) (models.KeyPairInfo, error)
	SetKeyPair(ctx context.Context, req models.KeyPairRequest) error
	UpdateKeyPair(ctx context.Context, req models.KeyPairRequest) error

	// ChangePassword replaces the account credentials and ring. The adapter
	// switches to the returned API key on success.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.ChangePasswordResponse, error)

	// PublicKey returns the public key of another account.
	PublicKey(ctx context.Context, email string) (string, error)

	FolderContent(ctx context.Context, folderUUID string) (models.FolderContent, error)
	SharedIn(ctx context.Context, folderUUID string) (models.FolderContent, error)
	SharedOut(ctx context.Context, folderUUID string) (models.FolderContent, error)
	Recents(ctx context.Context) (models.FolderContent, error)
	Trash(ctx context.Context) (models.FolderContent, error)

	LinkInfo(ctx context.Context, linkUUID string) (models.LinkInfo, error)
	LinkDirContent(ctx context.Context, req models.LinkContentRequest) (models.FolderContent, error)
	LinkStatus(ctx context.Context, folderUUID string) (models.LinkStatus, error)
	AddItemToLink(ctx context.Context, req models.LinkAddRequest) error
	EditLink(ctx context.Context, req models.LinkEditRequest) error
	DisableLink(ctx context.Context, linkUUID string) error
	ItemLinks(ctx context.Context, itemUUID string) ([]models.ItemLink, error)
	RenameInLink(ctx context.Context, req models.LinkRenameRequest) error

	ShareItem(ctx context.Context, req models.ShareRequest) error
	RenameItem(ctx context.Context, req models.RenameRequest) error

	// MarkUploadDone finalizes an upload. Returns [ErrUploadNotReady]
	// (matched with errors.Is) while chunks are still being committed.
	MarkUploadDone(ctx context.Context, req models.UploadDoneRequest) error
}
