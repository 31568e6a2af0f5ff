// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

// EncryptedString is a self-describing encrypted metadata blob. The version
// prefix tells which codec produced it; the key is never embedded.
type EncryptedString string

const (
	// MetadataVersionGCM prefixes blobs produced by [EncryptMetadata].
	MetadataVersionGCM = "002"
	// MetadataPrefixLegacy is base64("Salted_"), the OpenSSL salted header of
	// the first generation blobs. Decoded only.
	MetadataPrefixLegacy = "U2FsdGVk"

	metadataNonceLen = 12
	gcmKeyLen        = 32
	legacySaltOffset = 8
	legacyDataOffset = 16
)

// EncryptMetadata encrypts plaintext under key with AES-256-GCM. The AES key
// is PBKDF2-SHA512(key, key, 1, 32); the nonce is 12 random alphanumeric
// characters so it can be carried as plain text in the blob.
func EncryptMetadata(plaintext string, key string) (EncryptedString, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	aead, err := metadataCipher(key)
	if err != nil {
		return "", err
	}

	nonce, err := GenerateRandomString(metadataNonceLen)
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, []byte(nonce), []byte(plaintext), nil)
	return EncryptedString(MetadataVersionGCM + nonce + base64.StdEncoding.EncodeToString(sealed)), nil
}

// DecryptMetadata reverses [EncryptMetadata]. Legacy OpenSSL blobs are
// accepted too. A wrong key yields [ErrDecryptionFailed], never garbage.
func DecryptMetadata(blob EncryptedString, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	s := string(blob)
	switch {
	case strings.HasPrefix(s, MetadataPrefixLegacy):
		return decryptLegacy(s, key)
	case len(s) < len(MetadataVersionGCM):
		return "", ErrMalformedMetadata
	case strings.HasPrefix(s, MetadataVersionGCM):
		return decryptGCM(s, key)
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMetadataVersion, s[:len(MetadataVersionGCM)])
}

func decryptGCM(s, key string) (string, error) {
	body := s[len(MetadataVersionGCM):]
	if len(body) <= metadataNonceLen {
		return "", ErrMalformedMetadata
	}

	nonce := body[:metadataNonceLen]
	sealed, err := base64.StdEncoding.DecodeString(body[metadataNonceLen:])
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrMalformedMetadata, err)
	}

	aead, err := metadataCipher(key)
	if err != nil {
		return "", err
	}
	if len(sealed) < aead.Overhead() {
		return "", ErrMalformedMetadata
	}

	plain, err := aead.Open(nil, []byte(nonce), sealed, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plain), nil
}

func metadataCipher(key string) (cipher.AEAD, error) {
	derived := pbkdf2.Key([]byte(key), []byte(key), 1, gcmKeyLen, sha512.New)

	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return aead, nil
}

// decryptLegacy opens an OpenSSL "Salted__" AES-256-CBC blob whose key and IV
// come from EVP_BytesToKey(MD5) over the raw key string.
func decryptLegacy(s, key string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrMalformedMetadata, err)
	}
	if len(raw) < legacyDataOffset+aes.BlockSize || (len(raw)-legacyDataOffset)%aes.BlockSize != 0 {
		return "", ErrMalformedMetadata
	}

	salt := raw[legacySaltOffset:legacyDataOffset]
	ct := raw[legacyDataOffset:]
	k, iv := evpBytesToKey([]byte(key), salt, 32, aes.BlockSize)

	block, err := aes.NewCipher(k)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ct)

	pad := int(plain[len(plain)-1])
	if pad == 0 || pad > aes.BlockSize || pad > len(plain) {
		return "", ErrDecryptionFailed
	}
	if !bytes.Equal(plain[len(plain)-pad:], bytes.Repeat([]byte{byte(pad)}, pad)) {
		return "", ErrDecryptionFailed
	}
	// CBC has no authentication: a wrong key still yields valid padding about
	// once in 256 tries, but practically never valid UTF-8.
	plain = plain[:len(plain)-pad]
	if !utf8.Valid(plain) {
		return "", ErrDecryptionFailed
	}
	return string(plain), nil
}

func evpBytesToKey(pass, salt []byte, keyLen, ivLen int) ([]byte, []byte) {
	var (
		out  []byte
		prev []byte
	)
	for len(out) < keyLen+ivLen {
		h := md5.New()
		h.Write(prev)
		h.Write(pass)
		h.Write(salt)
		prev = h.Sum(nil)
		out = append(out, prev...)
	}
	return out[:keyLen], out[keyLen : keyLen+ivLen]
}
