// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// LinkPasswordScheme tells how a public link password hash was produced.
// The wire format carries no marker; the scheme follows from the salt.
type LinkPasswordScheme int

const (
	// LinkPasswordLegacy is hex(SHA1(hex(SHA512(password)))), unsalted.
	LinkPasswordLegacy LinkPasswordScheme = iota
	// LinkPasswordStrong is hex(PBKDF2-SHA512(password, salt, 200000, 64)).
	LinkPasswordStrong
)

const (
	// LinkSaltLength is the salt size that marks the strong scheme.
	LinkSaltLength = 32

	// EmptyLinkPassword is hashed in place of a missing link password.
	EmptyLinkPassword = "empty"
)

func (s LinkPasswordScheme) String() string {
	if s == LinkPasswordStrong {
		return "strong"
	}
	return "legacy"
}

// LinkPasswordSchemeFor picks the scheme for a password and salt pair.
func LinkPasswordSchemeFor(password, salt string) LinkPasswordScheme {
	if password != "" && len(salt) == LinkSaltLength {
		return LinkPasswordStrong
	}
	return LinkPasswordLegacy
}

// GenerateLinkSalt mints a salt for a link edit. Every edit gets a new one.
func GenerateLinkSalt() (string, error) {
	return GenerateRandomString(LinkSaltLength)
}

// HashLinkPassword hashes a public link password with the scheme selected by
// [LinkPasswordSchemeFor].
func HashLinkPassword(password, salt string) string {
	if LinkPasswordSchemeFor(password, salt) == LinkPasswordStrong {
		return hex.EncodeToString(pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha512.New))
	}
	if password == "" {
		return legacyHash(EmptyLinkPassword)
	}
	return legacyHash(password)
}
