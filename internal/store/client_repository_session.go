package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

const (
	keySession    = "session"
	keyMasterKeys = "masterKeys"
	keyPublicKey  = "publicKey"
	keyPrivateKey = "privateKey"
	keyLinkPrefix = "linkKey:"
)

type sessionRepository struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewSessionRepository stores session state in the default partition of kv.
func NewSessionRepository(kv KeyValueStore, logger *logger.Logger) SessionRepository {
	return &sessionRepository{kv: kv, logger: logger}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodingValue, err)
	}
	return r.kv.Set(ctx, PartitionDefault, keySession, raw)
}

func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	raw, err := r.kv.Get(ctx, PartitionDefault, keySession)
	if errors.Is(err, ErrKeyNotFound) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(raw, &session); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.LoadSession").Msg("stored session is corrupted")
		return models.Session{}, fmt.Errorf("%w: %v", ErrEncodingValue, err)
	}
	if session.APIKey == "" {
		return models.Session{}, ErrLocalSessionNotFound
	}
	return session, nil
}

func (r *sessionRepository) SaveMasterKeys(ctx context.Context, serializedRing string) error {
	return r.kv.Set(ctx, PartitionDefault, keyMasterKeys, []byte(serializedRing))
}

func (r *sessionRepository) LoadMasterKeys(ctx context.Context) (string, error) {
	raw, err := r.kv.Get(ctx, PartitionDefault, keyMasterKeys)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *sessionRepository) SaveKeyPair(ctx context.Context, publicKey, privateKey string) error {
	if err := r.kv.Set(ctx, PartitionDefault, keyPublicKey, []byte(publicKey)); err != nil {
		return err
	}
	return r.kv.Set(ctx, PartitionDefault, keyPrivateKey, []byte(privateKey))
}

func (r *sessionRepository) LoadKeyPair(ctx context.Context) (string, string, error) {
	pub, err := r.kv.Get(ctx, PartitionDefault, keyPublicKey)
	if err != nil {
		return "", "", err
	}
	priv, err := r.kv.Get(ctx, PartitionDefault, keyPrivateKey)
	if err != nil {
		return "", "", err
	}
	return string(pub), string(priv), nil
}

func (r *sessionRepository) SaveLinkKey(ctx context.Context, linkUUID, key string) error {
	return r.kv.Set(ctx, PartitionDefault, keyLinkPrefix+linkUUID, []byte(key))
}

func (r *sessionRepository) LoadLinkKey(ctx context.Context, linkUUID string) (string, error) {
	raw, err := r.kv.Get(ctx, PartitionDefault, keyLinkPrefix+linkUUID)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *sessionRepository) DeleteLinkKey(ctx context.Context, linkUUID string) error {
	return r.kv.Delete(ctx, PartitionDefault, keyLinkPrefix+linkUUID)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	var errs []error
	for _, p := range Partitions {
		if err := r.kv.Clear(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
