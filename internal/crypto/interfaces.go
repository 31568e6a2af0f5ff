// Package crypto holds the client-side primitives of the encrypted drive:
// password key derivation, the versioned metadata codec, the master key
// ring, the RSA sharing codec and public link keys and passwords.
//
// Every function in this package is pure except for reads from the OS
// random source. Nothing here knows about the network or the local store.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService is the key material factory used by the services. It binds
// the package functions to the configured parameters (auth version of new
// accounts, RSA size) and lets tests replace expensive generation.
type KeyChainService interface {
	// CurrentAuthVersion is the auth version used for registration and
	// password changes.
	CurrentAuthVersion() AuthVersion

	// GenerateAccountSalt mints a 256 character account salt.
	GenerateAccountSalt() (string, error)

	// Derive runs the KDF selected by version over password and salt.
	Derive(password, salt string, version AuthVersion) (DerivedCredentials, error)

	// GenerateKeyPair creates a new RSA keypair of the configured size.
	GenerateKeyPair() (KeyPair, error)

	// GenerateLinkKey mints a folder link key.
	GenerateLinkKey() (LinkKey, error)

	// GenerateLinkSalt mints a 32 character link salt.
	GenerateLinkSalt() (string, error)

	// HashLinkPassword hashes a link password under the scheme implied by salt.
	HashLinkPassword(password, salt string) string
}
