// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedAuthVersion is returned by [Derive] for an auth version
	// without a known KDF parameter set. It is never recovered by falling back
	// to another scheme.
	ErrUnsupportedAuthVersion = errors.New("unsupported auth version")

	// ErrMalformedMetadata is returned when an encrypted metadata string is
	// empty, too short or not valid for its declared version.
	ErrMalformedMetadata = errors.New("malformed encrypted metadata")

	// ErrUnknownMetadataVersion is returned when the version prefix of an
	// encrypted metadata string is not recognised.
	ErrUnknownMetadataVersion = errors.New("unknown metadata version")

	// ErrDecryptionFailed is returned when authentication of the ciphertext
	// fails, which almost always means the wrong key was used.
	ErrDecryptionFailed = errors.New("metadata decryption failed")

	// ErrEmptyKey is returned when an empty key is passed to a codec.
	ErrEmptyKey = errors.New("empty key")

	// ErrEmptyKeyRing is returned when a ring operation needs at least one key.
	ErrEmptyKeyRing = errors.New("master key ring is empty")

	ErrInvalidPublicKey  = errors.New("invalid public key")
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrKeyPairMismatch   = errors.New("public and private key mismatch")
)

// AllKeysFailedError denotes that no key of a [MasterKeyRing] could decrypt
// a blob. Errors holds the per-key failures in the order they were tried.
type AllKeysFailedError struct {
	Errors []error
}

func (e *AllKeysFailedError) Error() string {
	return fmt.Sprintf("all %d keys failed: %v", len(e.Errors), errors.Join(e.Errors...))
}

// Is makes every AllKeysFailedError match [ErrDecryptionFailed].
func (e *AllKeysFailedError) Is(target error) bool {
	return target == ErrDecryptionFailed
}
