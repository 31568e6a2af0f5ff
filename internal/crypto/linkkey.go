// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// LinkKeyLength is the number of characters of a folder link key.
const LinkKeyLength = 32

// LinkKey encrypts the metadata of every item reachable through one public
// folder link. It travels to visitors in the URL fragment and is stored
// ring-encrypted for the owner.
type LinkKey string

// GenerateLinkKey mints a new link key.
func GenerateLinkKey() (LinkKey, error) {
	k, err := GenerateRandomString(LinkKeyLength)
	if err != nil {
		return "", fmt.Errorf("generate link key: %w", err)
	}
	return LinkKey(k), nil
}

// WrapLinkKey encrypts the link key under the ring's newest master key so the
// server can keep it for the owner.
func WrapLinkKey(ring *MasterKeyRing, key LinkKey) (EncryptedString, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	return ring.Encrypt(string(key))
}

// UnwrapLinkKey recovers a link key stored by [WrapLinkKey] with any ring key.
func UnwrapLinkKey(ring *MasterKeyRing, wrapped EncryptedString) (LinkKey, error) {
	plain, err := ring.Decrypt(wrapped)
	if err != nil {
		return "", fmt.Errorf("unwrap link key: %w", err)
	}
	return LinkKey(plain), nil
}

// Encrypt encrypts link metadata directly under the link key.
func (k LinkKey) Encrypt(plaintext string) (EncryptedString, error) {
	return EncryptMetadata(plaintext, string(k))
}

// Decrypt decrypts link metadata with the link key.
func (k LinkKey) Decrypt(blob EncryptedString) (string, error) {
	return DecryptMetadata(blob, string(k))
}
