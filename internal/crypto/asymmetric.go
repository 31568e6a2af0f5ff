// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha512"
	"crypto/x509"
	"encoding/base64"
	"fmt"
)

const (
	// DefaultKeyPairBits is the RSA modulus size of new account keypairs.
	DefaultKeyPairBits = 4096

	// minKeyLength is the shortest string accepted as a serialized key half.
	// The server returns short placeholders for accounts without a keypair.
	minKeyLength = 16
)

// KeyPair holds both halves of an account keypair in their wire form:
// base64 SPKI DER public key and base64 PKCS#8 DER private key.
type KeyPair struct {
	PublicKey  string
	PrivateKey string
}

// Valid reports whether both halves look like real keys.
func (kp KeyPair) Valid() bool {
	return len(kp.PublicKey) >= minKeyLength && len(kp.PrivateKey) >= minKeyLength
}

// GenerateKeyPair creates a fresh RSA keypair of the given size.
func GenerateKeyPair(bits int) (KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return KeyPair{}, fmt.Errorf("generate rsa key: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return KeyPair{}, fmt.Errorf("marshal public key: %w", err)
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return KeyPair{}, fmt.Errorf("marshal private key: %w", err)
	}

	return KeyPair{
		PublicKey:  base64.StdEncoding.EncodeToString(pubDER),
		PrivateKey: base64.StdEncoding.EncodeToString(privDER),
	}, nil
}

// ParsePublicKey decodes a base64 SPKI DER RSA public key.
func ParsePublicKey(encoded string) (*rsa.PublicKey, error) {
	der, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPublicKey)
	}
	return pub, nil
}

// ParsePrivateKey decodes a base64 PKCS#8 DER RSA private key.
func ParsePrivateKey(encoded string) (*rsa.PrivateKey, error) {
	der, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPrivateKey)
	}
	return priv, nil
}

// Matches reports whether the private half belongs to the public half.
func (kp KeyPair) Matches() error {
	pub, err := ParsePublicKey(kp.PublicKey)
	if err != nil {
		return err
	}
	priv, err := ParsePrivateKey(kp.PrivateKey)
	if err != nil {
		return err
	}
	if !priv.PublicKey.Equal(pub) {
		return ErrKeyPairMismatch
	}
	return nil
}

// EncryptForRecipient encrypts plaintext under a recipient public key with
// RSA-OAEP SHA-512 and returns it base64 encoded.
func EncryptForRecipient(plaintext string, pub *rsa.PublicKey) (string, error) {
	ct, err := rsa.EncryptOAEP(sha512.New(), rand.Reader, pub, []byte(plaintext), nil)
	if err != nil {
		return "", fmt.Errorf("rsa encrypt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ct), nil
}

// DecryptWithPrivateKey reverses [EncryptForRecipient].
func DecryptWithPrivateKey(blob string, priv *rsa.PrivateKey) (string, error) {
	ct, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrMalformedMetadata, err)
	}
	plain, err := rsa.DecryptOAEP(sha512.New(), rand.Reader, priv, ct, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plain), nil
}
