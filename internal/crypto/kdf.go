// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// AuthVersion selects the key derivation parameter set of an account.
// It is always stored together with the account salt.
type AuthVersion int

const (
	// AuthVersionLegacy is the unsalted hash chain of the first clients.
	// Supported for login of old accounts only.
	AuthVersionLegacy AuthVersion = 1
	// AuthVersionPBKDF2 is PBKDF2-SHA512 with 200 000 iterations.
	AuthVersionPBKDF2 AuthVersion = 2
	// AuthVersionArgon2 is Argon2id with t=3, m=64MiB, p=4.
	AuthVersionArgon2 AuthVersion = 3

	// CurrentAuthVersion is used for every new account and every password change.
	CurrentAuthVersion = AuthVersionPBKDF2
)

const (
	pbkdf2Iterations = 200_000
	pbkdf2KeyLen     = 64

	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 64

	// AccountSaltLength is the number of characters in a freshly minted account salt.
	AccountSaltLength = 256
)

// Supported reports whether v has a known parameter set.
func (v AuthVersion) Supported() bool {
	switch v {
	case AuthVersionLegacy, AuthVersionPBKDF2, AuthVersionArgon2:
		return true
	}
	return false
}

func (v AuthVersion) String() string {
	switch v {
	case AuthVersionLegacy:
		return "v1-legacy"
	case AuthVersionPBKDF2:
		return "v2-pbkdf2"
	case AuthVersionArgon2:
		return "v3-argon2id"
	}
	return fmt.Sprintf("v%d-unknown", int(v))
}

// DerivedCredentials is the output of [Derive]. AuthSecret is sent to the
// server as the login password; MasterKey never leaves the client.
type DerivedCredentials struct {
	AuthSecret string
	MasterKey  MasterKey
}

// Derive turns a password and account salt into login credentials using the
// parameter set of version. It is deterministic and does no I/O.
func Derive(password, salt string, version AuthVersion) (DerivedCredentials, error) {
	switch version {
	case AuthVersionLegacy:
		return deriveLegacy(password), nil

	case AuthVersionPBKDF2:
		derived := hex.EncodeToString(pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha512.New))
		half := len(derived) / 2
		return DerivedCredentials{
			MasterKey:  MasterKey(derived[:half]),
			AuthSecret: sha512Hex(derived[half:]),
		}, nil

	case AuthVersionArgon2:
		derived := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
		half := len(derived) / 2
		return DerivedCredentials{
			MasterKey:  MasterKey(hex.EncodeToString(derived[:half])),
			AuthSecret: hex.EncodeToString(derived[half:]),
		}, nil
	}

	return DerivedCredentials{}, fmt.Errorf("%w: %d", ErrUnsupportedAuthVersion, int(version))
}

// GenerateAccountSalt mints a fresh account salt.
func GenerateAccountSalt() (string, error) {
	return GenerateRandomString(AccountSaltLength)
}

func deriveLegacy(password string) DerivedCredentials {
	return DerivedCredentials{
		MasterKey:  MasterKey(legacyHash(password)),
		AuthSecret: sha512Hex(sha384Hex(sha256Hex(sha1Hex(password)))),
	}
}

// legacyHash is hex(SHA1(hex(SHA512(s)))). It backs v1 master keys and the
// legacy link password scheme.
func legacyHash(s string) string {
	return sha1Hex(sha512Hex(s))
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func sha384Hex(s string) string {
	sum := sha512.Sum384([]byte(s))
	return hex.EncodeToString(sum[:])
}

func sha512Hex(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}
