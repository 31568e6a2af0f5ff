// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"slices"
	"strings"
	"sync"
)

// MasterKey is a 64 character hex key derived from the account password.
type MasterKey string

const ringSeparator = "|"

// MasterKeyRing is the ordered list of every master key an account has ever
// had, oldest first. The newest key encrypts; all keys are tried on decrypt.
// Keys are only ever appended, so old metadata stays readable after any
// number of password changes. Safe for concurrent use.
type MasterKeyRing struct {
	mu   sync.RWMutex
	keys []MasterKey
}

// NewMasterKeyRing builds a ring from keys given oldest first. Empty and
// duplicate keys are skipped.
func NewMasterKeyRing(keys ...MasterKey) *MasterKeyRing {
	r := &MasterKeyRing{}
	for _, k := range keys {
		r.appendLocked(k)
	}
	return r
}

// ParseMasterKeyRing reads the pipe delimited form produced by [MasterKeyRing.Serialize].
func ParseMasterKeyRing(serialized string) *MasterKeyRing {
	r := &MasterKeyRing{}
	for _, part := range strings.Split(serialized, ringSeparator) {
		r.appendLocked(MasterKey(strings.TrimSpace(part)))
	}
	return r
}

// Keys returns a copy of the keys, oldest first.
func (r *MasterKeyRing) Keys() []MasterKey {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.keys)
}

func (r *MasterKeyRing) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.keys)
}

// Current returns the newest key.
func (r *MasterKeyRing) Current() (MasterKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.keys) == 0 {
		return "", ErrEmptyKeyRing
	}
	return r.keys[len(r.keys)-1], nil
}

func (r *MasterKeyRing) Contains(key MasterKey) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.keys, key)
}

// Append adds key as the newest key. It reports false when the key is empty
// or already present.
func (r *MasterKeyRing) Append(key MasterKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.appendLocked(key)
}

func (r *MasterKeyRing) appendLocked(key MasterKey) bool {
	if key == "" || slices.Contains(r.keys, key) {
		return false
	}
	r.keys = append(r.keys, key)
	return true
}

// Merge appends every key of other unknown to r, in other's order. Existing
// keys keep their position. It returns the number of keys added.
func (r *MasterKeyRing) Merge(other *MasterKeyRing) int {
	incoming := other.Keys()

	r.mu.Lock()
	defer r.mu.Unlock()
	added := 0
	for _, k := range incoming {
		if r.appendLocked(k) {
			added++
		}
	}
	return added
}

// WithKey returns a copy of the ring with key appended. r is not modified.
func (r *MasterKeyRing) WithKey(key MasterKey) *MasterKeyRing {
	staged := NewMasterKeyRing(r.Keys()...)
	staged.Append(key)
	return staged
}

// Serialize returns the keys joined by "|", oldest first.
func (r *MasterKeyRing) Serialize() string {
	keys := r.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ringSeparator)
}

// Encrypt encrypts plaintext under the newest key.
func (r *MasterKeyRing) Encrypt(plaintext string) (EncryptedString, error) {
	key, err := r.Current()
	if err != nil {
		return "", err
	}
	return EncryptMetadata(plaintext, string(key))
}

// Decrypt tries every key from newest to oldest and returns the first
// successful plaintext. When no key works the result is an [*AllKeysFailedError].
func (r *MasterKeyRing) Decrypt(blob EncryptedString) (string, error) {
	keys := r.Keys()
	if len(keys) == 0 {
		return "", ErrEmptyKeyRing
	}

	errs := make([]error, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		plain, err := DecryptMetadata(blob, string(keys[i]))
		if err == nil {
			return plain, nil
		}
		if errors.Is(err, ErrMalformedMetadata) || errors.Is(err, ErrUnknownMetadataVersion) {
			return "", err
		}
		errs = append(errs, err)
	}
	return "", &AllKeysFailedError{Errors: errs}
}

// DecryptOldestFirst tries the ring keys oldest first and then every probe
// key. It returns the plaintext together with the key that opened it.
func (r *MasterKeyRing) DecryptOldestFirst(blob EncryptedString, probes ...MasterKey) (string, MasterKey, error) {
	candidates := append(r.Keys(), probes...)
	if len(candidates) == 0 {
		return "", "", ErrEmptyKeyRing
	}

	errs := make([]error, 0, len(candidates))
	for _, k := range candidates {
		if k == "" {
			continue
		}
		plain, err := DecryptMetadata(blob, string(k))
		if err == nil {
			return plain, k, nil
		}
		errs = append(errs, err)
	}
	return "", "", &AllKeysFailedError{Errors: errs}
}
