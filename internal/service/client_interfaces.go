// Package service implements the client side of the encrypted drive: the
// authentication protocol, master key ring maintenance, the keypair
// lifecycle, metadata decoding of folder listings, sharing, public links and
// upload finalization.
//
// All services share one [ClientSession] that holds the plaintext key
// material in memory. Expensive crypto runs on the [workers.Pool] passed in
// [Dependencies].
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// KeyEventObserver is notified about changes of the account key material.
// Calls are synchronous and must not block.
type KeyEventObserver interface {
	// RingRotated is called after the master key ring gained or reordered
	// keys and was persisted.
	RingRotated(keyCount int)

	// KeyPairUpdated is called after the keypair was created or
	// re-encrypted on the server.
	KeyPairUpdated(publicKey string)

	// SessionInvalidated is called after the server rejected the API key
	// and the local session was cleared.
	SessionInvalidated(cause error)
}

// PublicKeyDirectory resolves the public key of another account.
type PublicKeyDirectory interface {
	LookupPublicKey(ctx context.Context, email string) (string, error)
}

// ClientAuthService defines the client-side contract for registration and
// authentication.
type ClientAuthService interface {
	// Register creates an account under the current auth version with a
	// fresh account salt. It does not log in.
	Register(ctx context.Context, creds models.Credentials) error

	// Authenticate runs the full login protocol: fetch auth info, derive
	// the credentials, exchange the auth secret for an API key, resync the
	// master key ring and make sure the keypair exists.
	Authenticate(ctx context.Context, creds models.Credentials) (models.Session, error)

	// RestoreSession loads a previously persisted session without any
	// network call.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout wipes the in-memory and the persisted session.
	Logout(ctx context.Context) error
}

// ClientKeyService maintains the master key ring.
type ClientKeyService interface {
	// UpdateKeys uploads the local ring and merges the server copy. probes
	// are extra keys tried when none of the ring keys opens the server
	// copy.
	UpdateKeys(ctx context.Context, probes []crypto.MasterKey) error

	// ChangePassword derives a new master key under a fresh salt and
	// commits it to the ring once the server acknowledged the change.
	ChangePassword(ctx context.Context, change models.PasswordChange) error
}

// ClientKeyPairService keeps the RSA keypair of the account usable.
type ClientKeyPairService interface {
	// EnsureKeyPair creates the keypair if the account has none, or
	// decrypts the server copy and re-encrypts it under the newest master
	// key. It is idempotent.
	EnsureKeyPair(ctx context.Context) error
}

// ClientMetadataService decodes and encodes item metadata.
type ClientMetadataService interface {
	// DecodeFolderListing decrypts every item of content with the key the
	// listing source calls for. Items that fail to decode are dropped.
	DecodeFolderListing(ctx context.Context, content models.FolderContent, lc models.ListingContext) ([]models.DecodedItem, error)

	// ListFolder fetches and decodes a listing of an authenticated view.
	ListFolder(ctx context.Context, source models.ListingSource, folderUUID string) ([]models.DecodedItem, error)

	// EncryptItemMetadata encrypts the metadata of item under the newest
	// master key.
	EncryptItemMetadata(ctx context.Context, item models.DecodedItem) (string, error)

	// RenameItem stores new metadata for item and refreshes its copies in
	// every public link it belongs to.
	RenameItem(ctx context.Context, item models.DecodedItem, newName string) error
}

// ClientShareService shares items with other accounts.
type ClientShareService interface {
	// EncryptAndShare encrypts the metadata of item under the public key of
	// every recipient. A failure for one recipient never affects another.
	EncryptAndShare(ctx context.Context, item models.DecodedItem, parent string, emails []string) []models.ShareResult
}

// ClientLinkService manages public folder links.
type ClientLinkService interface {
	CreateFolderLink(ctx context.Context, items []models.LinkedItem, expiration string) (models.FolderLink, error)
	// EditLink stores new link settings under a freshly minted salt.
	EditLink(ctx context.Context, linkUUID string, settings models.LinkSettings) error
	DisableLink(ctx context.Context, linkUUID string) error
	// DecryptLinkKey recovers the link key of an owned folder link.
	DecryptLinkKey(ctx context.Context, folderUUID string) (crypto.LinkKey, error)
	// LinkPasswordHash hashes password with the salt of the link.
	LinkPasswordHash(ctx context.Context, linkUUID, password string) (string, error)
	// ListLinkFolder lists a folder reached through a public link.
	ListLinkFolder(ctx context.Context, linkUUID, parent string, key crypto.LinkKey, password string) ([]models.DecodedItem, error)
}

// ClientUploadService finalizes uploads.
type ClientUploadService interface {
	// MarkUploadDone encrypts the file metadata and finalizes the upload,
	// polling while the server reports the chunks as not committed yet.
	MarkUploadDone(ctx context.Context, file models.UploadedFile) error
}

// ClientKeySyncJob periodically resyncs the master key ring and the
// keypair of the authenticated account.
type ClientKeySyncJob interface {
	// Start launches the background goroutine. Any previously running job
	// is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
