package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cloud-keeper/internal/adapter"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
	"github.com/MKhiriev/go-cloud-keeper/internal/workers"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

type clientKeyPairService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionRepository
	keyChain crypto.KeyChainService
	pool     *workers.Pool
	session  *ClientSession
	observer KeyEventObserver
	guard    *sessionGuard
	logger   *logger.Logger
}

func NewClientKeyPairService(deps Dependencies) ClientKeyPairService {
	deps = deps.withDefaults()
	return &clientKeyPairService{
		adapter:  deps.Adapter,
		sessions: deps.Storages.Session,
		keyChain: deps.KeyChain,
		pool:     deps.Pool,
		session:  deps.Session,
		observer: deps.Observer,
		guard:    deps.guard(),
		logger:   deps.Logger,
	}
}

// EnsureKeyPair implements [ClientKeyPairService].
func (k *clientKeyPairService) EnsureKeyPair(ctx context.Context) error {
	ring, err := k.session.Ring()
	if err != nil {
		return err
	}

	info, err := k.adapter.KeyPairInfo(ctx)
	if err != nil {
		return k.guard.check(ctx, err)
	}

	remote := crypto.KeyPair{PublicKey: info.PublicKey, PrivateKey: info.PrivateKey}
	if !remote.Valid() {
		return k.create(ctx, ring)
	}
	return k.refresh(ctx, ring, remote)
}

// create generates the first keypair of the account.
func (k *clientKeyPairService) create(ctx context.Context, ring *crypto.MasterKeyRing) error {
	kp, err := workers.Do(ctx, k.pool, "generate_keypair", k.keyChain.GenerateKeyPair)
	if err != nil {
		return fmt.Errorf("error generating keypair: %w", err)
	}

	encrypted, err := ring.Encrypt(kp.PrivateKey)
	if err != nil {
		return fmt.Errorf("error encrypting private key: %w", err)
	}

	err = k.adapter.SetKeyPair(ctx, models.KeyPairRequest{PublicKey: kp.PublicKey, PrivateKey: string(encrypted)})
	if err != nil {
		return k.guard.check(ctx, err)
	}

	if err = k.session.setKeyPair(kp); err != nil {
		return err
	}
	k.save(ctx, kp)

	k.logger.Info().Str("func", "clientKeyPairService.create").Msg("created account keypair")
	k.observer.KeyPairUpdated(kp.PublicKey)
	return nil
}

// refresh opens the server copy and stores it again under the newest master
// key. A copy no ring key opens leaves the account usable through the local
// keypair when that one still matches the server public key.
func (k *clientKeyPairService) refresh(ctx context.Context, ring *crypto.MasterKeyRing, remote crypto.KeyPair) error {
	log := k.logger.WithOperation("refresh_keypair")

	privateKey, _, err := ring.DecryptOldestFirst(crypto.EncryptedString(remote.PrivateKey))
	if err != nil {
		if k.loadLocal(ctx, remote.PublicKey) {
			log.Warn().Err(err).Str("func", "clientKeyPairService.refresh").Msg("server private key unreadable, using local copy")
			return nil
		}
		log.Warn().Err(err).Str("func", "clientKeyPairService.refresh").Msg("no key opens the server private key")
		return nil
	}

	kp := crypto.KeyPair{PublicKey: remote.PublicKey, PrivateKey: privateKey}
	if err = k.session.setKeyPair(kp); err != nil {
		log.Warn().Err(err).Str("func", "clientKeyPairService.refresh").Msg("server keypair is unusable")
		return nil
	}
	k.save(ctx, kp)

	encrypted, err := ring.Encrypt(kp.PrivateKey)
	if err != nil {
		return fmt.Errorf("error encrypting private key: %w", err)
	}
	err = k.adapter.UpdateKeyPair(ctx, models.KeyPairRequest{PublicKey: kp.PublicKey, PrivateKey: string(encrypted)})
	if err != nil {
		return k.guard.check(ctx, err)
	}

	k.observer.KeyPairUpdated(kp.PublicKey)
	return nil
}

func (k *clientKeyPairService) loadLocal(ctx context.Context, publicKey string) bool {
	if k.sessions == nil {
		return false
	}
	pub, priv, err := k.sessions.LoadKeyPair(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			k.logger.Warn().Err(err).Str("func", "clientKeyPairService.loadLocal").Msg("failed to load local keypair")
		}
		return false
	}
	if pub != publicKey {
		return false
	}
	return k.session.setKeyPair(crypto.KeyPair{PublicKey: pub, PrivateKey: priv}) == nil
}

func (k *clientKeyPairService) save(ctx context.Context, kp crypto.KeyPair) {
	if k.sessions == nil {
		return
	}
	if err := k.sessions.SaveKeyPair(ctx, kp.PublicKey, kp.PrivateKey); err != nil {
		k.logger.Warn().Err(err).Str("func", "clientKeyPairService.save").Msg("failed to persist keypair")
	}
}
