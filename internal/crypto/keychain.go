// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

type keyChainService struct {
	authVersion AuthVersion
	keyPairBits int
}

// NewKeyChainService returns a [KeyChainService] that registers accounts
// under authVersion and generates RSA keys of keyPairBits. Zero values fall
// back to [CurrentAuthVersion] and [DefaultKeyPairBits].
func NewKeyChainService(authVersion AuthVersion, keyPairBits int) (KeyChainService, error) {
	if authVersion == 0 {
		authVersion = CurrentAuthVersion
	}
	if authVersion == AuthVersionLegacy || !authVersion.Supported() {
		return nil, fmt.Errorf("%w for new accounts: %s", ErrUnsupportedAuthVersion, authVersion)
	}
	if keyPairBits == 0 {
		keyPairBits = DefaultKeyPairBits
	}
	if keyPairBits < 2048 {
		return nil, fmt.Errorf("rsa key size %d is too small", keyPairBits)
	}

	return &keyChainService{
		authVersion: authVersion,
		keyPairBits: keyPairBits,
	}, nil
}

func (k *keyChainService) CurrentAuthVersion() AuthVersion {
	return k.authVersion
}

func (k *keyChainService) GenerateAccountSalt() (string, error) {
	return GenerateAccountSalt()
}

func (k *keyChainService) Derive(password, salt string, version AuthVersion) (DerivedCredentials, error) {
	return Derive(password, salt, version)
}

func (k *keyChainService) GenerateKeyPair() (KeyPair, error) {
	return GenerateKeyPair(k.keyPairBits)
}

func (k *keyChainService) GenerateLinkKey() (LinkKey, error) {
	return GenerateLinkKey()
}

func (k *keyChainService) GenerateLinkSalt() (string, error) {
	return GenerateLinkSalt()
}

func (k *keyChainService) HashLinkPassword(password, salt string) string {
	return HashLinkPassword(password, salt)
}
