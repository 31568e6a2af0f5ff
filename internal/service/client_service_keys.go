// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cloud-keeper/internal/adapter"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
	"github.com/MKhiriev/go-cloud-keeper/internal/validators"
	"github.com/MKhiriev/go-cloud-keeper/internal/workers"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

type clientKeyService struct {
	adapter   adapter.ServerAdapter
	sessions  store.SessionRepository
	keyChain  crypto.KeyChainService
	pool      *workers.Pool
	validator validators.Validator
	session   *ClientSession
	observer  KeyEventObserver
	guard     *sessionGuard
	logger    *logger.Logger

	keyPair ClientKeyPairService
}

func NewClientKeyService(deps Dependencies, keyPair ClientKeyPairService) ClientKeyService {
	deps = deps.withDefaults()
	return &clientKeyService{
		adapter:   deps.Adapter,
		sessions:  deps.Storages.Session,
		keyChain:  deps.KeyChain,
		pool:      deps.Pool,
		validator: deps.Validator,
		session:   deps.Session,
		observer:  deps.Observer,
		guard:     deps.guard(),
		logger:    deps.Logger,
		keyPair:   keyPair,
	}
}

// UpdateKeys implements [ClientKeyService]. The server copy decides the
// order of the merged ring; keys only known locally are appended behind it.
// A server copy that no key opens is logged and left alone.
func (k *clientKeyService) UpdateKeys(ctx context.Context, probes []crypto.MasterKey) error {
	log := k.logger.WithOperation("update_keys")

	ring, err := k.session.Ring()
	if err != nil {
		return err
	}

	encrypted, err := ring.Encrypt(ring.Serialize())
	if err != nil {
		return fmt.Errorf("error encrypting master keys: %w", err)
	}

	resp, err := k.adapter.MasterKeys(ctx, string(encrypted))
	if err != nil {
		return k.guard.check(ctx, err)
	}
	if resp.Keys == "" {
		return nil
	}

	plain, winner, err := ring.DecryptOldestFirst(crypto.EncryptedString(resp.Keys), probes...)
	if err != nil {
		log.Warn().Err(err).Str("func", "clientKeyService.UpdateKeys").Msg("no key opens the server master keys")
		return nil
	}

	// merge against the live ring: it may have gained keys since the snapshot
	merged, changed, err := k.session.updateRing(ctx, func(live *crypto.MasterKeyRing) *crypto.MasterKeyRing {
		next := crypto.ParseMasterKeyRing(plain)
		next.Merge(live)
		next.Append(winner)
		return next
	}, k.saveRing)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	log.Info().Str("func", "clientKeyService.UpdateKeys").Int("keys", merged.Len()).Msg("master key ring updated")
	k.observer.RingRotated(merged.Len())
	return nil
}

// ChangePassword implements [ClientKeyService]. The new master key enters
// the local ring only after the server accepted the change.
func (k *clientKeyService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	log := k.logger.WithOperation("change_password")

	if err := k.validator.Validate(ctx, change); err != nil {
		return err
	}

	ring, err := k.session.Ring()
	if err != nil {
		return err
	}
	info := k.session.Info()

	authInfo, err := k.adapter.AuthInfo(ctx, info.Email)
	if err != nil {
		return k.guard.check(ctx, err)
	}

	current, err := k.derive(ctx, change.CurrentPassword, authInfo.Salt, crypto.AuthVersion(authInfo.AuthVersion))
	if err != nil {
		return fmt.Errorf("error deriving current credentials: %w", err)
	}
	if !ring.Contains(current.MasterKey) {
		return ErrWrongPassword
	}

	salt, err := k.keyChain.GenerateAccountSalt()
	if err != nil {
		return fmt.Errorf("error generating account salt: %w", err)
	}
	version := k.keyChain.CurrentAuthVersion()

	next, err := k.derive(ctx, change.NewPassword, salt, version)
	if err != nil {
		return fmt.Errorf("error deriving new credentials: %w", err)
	}

	staged := ring.WithKey(next.MasterKey)
	encrypted, err := staged.Encrypt(staged.Serialize())
	if err != nil {
		return fmt.Errorf("error encrypting master keys: %w", err)
	}

	resp, err := k.adapter.ChangePassword(ctx, models.ChangePasswordRequest{
		Password:        next.AuthSecret,
		CurrentPassword: current.AuthSecret,
		AuthVersion:     int(version),
		Salt:            salt,
		MasterKeys:      string(encrypted),
	})
	if err != nil {
		mapped := k.guard.check(ctx, err)
		if k.session.Authenticated() {
			// the server may have stored the new ring before failing
			if syncErr := k.UpdateKeys(ctx, []crypto.MasterKey{next.MasterKey}); syncErr != nil {
				log.Warn().Err(syncErr).Str("func", "clientKeyService.ChangePassword").Msg("resync after failed password change")
			}
		}
		return mapped
	}

	ring, _, err = k.session.updateRing(ctx, func(live *crypto.MasterKeyRing) *crypto.MasterKeyRing {
		return live.WithKey(next.MasterKey)
	}, k.saveRing)
	if err != nil {
		return err
	}

	info.AuthVersion = int(version)
	if resp.NewAPIKey != "" {
		info.APIKey = resp.NewAPIKey
	}
	k.session.setInfo(info)
	if k.sessions != nil {
		if err = k.sessions.SaveSession(ctx, info); err != nil {
			return fmt.Errorf("error saving session: %w", err)
		}
	}

	log.Info().Str("func", "clientKeyService.ChangePassword").Int("keys", ring.Len()).Msg("password changed")
	k.observer.RingRotated(ring.Len())

	if err = k.keyPair.EnsureKeyPair(ctx); err != nil {
		log.Warn().Err(err).Str("func", "clientKeyService.ChangePassword").Msg("keypair refresh after password change")
	}
	return nil
}

func (k *clientKeyService) derive(ctx context.Context, password, salt string, version crypto.AuthVersion) (crypto.DerivedCredentials, error) {
	return workers.Do(ctx, k.pool, "derive", func() (crypto.DerivedCredentials, error) {
		return k.keyChain.Derive(password, salt, version)
	})
}

func (k *clientKeyService) saveRing(ctx context.Context, serialized string) error {
	if k.sessions == nil {
		return nil
	}
	if err := k.sessions.SaveMasterKeys(ctx, serialized); err != nil {
		return fmt.Errorf("error saving master keys: %w", err)
	}
	return nil
}
