package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cloud-keeper/internal/adapter"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
	"github.com/MKhiriev/go-cloud-keeper/internal/utils"
	"github.com/MKhiriev/go-cloud-keeper/internal/validators"
	"github.com/MKhiriev/go-cloud-keeper/internal/workers"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	sessions  store.SessionRepository
	keyChain  crypto.KeyChainService
	pool      *workers.Pool
	validator validators.Validator
	session   *ClientSession
	guard     *sessionGuard
	logger    *logger.Logger

	keys    ClientKeyService
	keyPair ClientKeyPairService
}

func NewClientAuthService(deps Dependencies, keys ClientKeyService, keyPair ClientKeyPairService) ClientAuthService {
	deps = deps.withDefaults()
	return &clientAuthService{
		adapter:   deps.Adapter,
		sessions:  deps.Storages.Session,
		keyChain:  deps.KeyChain,
		pool:      deps.Pool,
		validator: deps.Validator,
		session:   deps.Session,
		guard:     deps.guard(),
		logger:    deps.Logger,
		keys:      keys,
		keyPair:   keyPair,
	}
}

func (a *clientAuthService) derive(ctx context.Context, password, salt string, version crypto.AuthVersion) (crypto.DerivedCredentials, error) {
	return workers.Do(ctx, a.pool, "derive", func() (crypto.DerivedCredentials, error) {
		return a.keyChain.Derive(password, salt, version)
	})
}

// Register implements [ClientAuthService]. Only the derived auth secret
// leaves the client.
func (a *clientAuthService) Register(ctx context.Context, creds models.Credentials) error {
	if err := a.validator.Validate(ctx, creds, validators.FieldEmail, validators.FieldNewPassword); err != nil {
		return err
	}

	salt, err := a.keyChain.GenerateAccountSalt()
	if err != nil {
		return fmt.Errorf("error generating account salt: %w", err)
	}
	version := a.keyChain.CurrentAuthVersion()

	derived, err := a.derive(ctx, creds.Password, salt, version)
	if err != nil {
		return fmt.Errorf("error deriving credentials: %w", err)
	}

	err = a.adapter.Register(ctx, models.RegisterRequest{
		Email:       creds.Email,
		Password:    derived.AuthSecret,
		Salt:        salt,
		AuthVersion: int(version),
	})
	if err != nil {
		return mapAdapterError(err)
	}

	a.logger.Info().Str("func", "clientAuthService.Register").Int("auth_version", int(version)).Msg("account registered")
	return nil
}

// Authenticate implements [ClientAuthService].
func (a *clientAuthService) Authenticate(ctx context.Context, creds models.Credentials) (models.Session, error) {
	log := a.logger.WithOperation("authenticate")

	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, err
	}

	info, err := a.adapter.AuthInfo(ctx, creds.Email)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	version := crypto.AuthVersion(info.AuthVersion)
	if !version.Supported() {
		return models.Session{}, fmt.Errorf("%w: %d", crypto.ErrUnsupportedAuthVersion, info.AuthVersion)
	}

	derived, err := a.derive(ctx, creds.Password, info.Salt, version)
	if err != nil {
		return models.Session{}, fmt.Errorf("error deriving credentials: %w", err)
	}

	resp, err := a.adapter.Login(ctx, models.LoginRequest{
		Email:         creds.Email,
		Password:      derived.AuthSecret,
		TwoFactorCode: creds.TwoFactorCode,
		AuthVersion:   int(version),
	})
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	ring := a.loginRing(ctx, creds.Email, derived.MasterKey, resp.MasterKeys)

	session := models.Session{
		Email:       creds.Email,
		APIKey:      resp.APIKey,
		UserID:      info.ID,
		AuthVersion: int(version),
	}
	if session.UserID == 0 {
		if id, err := utils.ParseUserIDFromJWT(resp.APIKey); err == nil {
			session.UserID = id
		}
	}

	a.session.setInfo(session)
	a.session.setRing(ring)

	if err = a.persist(ctx, session, ring); err != nil {
		return models.Session{}, err
	}

	if err = a.keys.UpdateKeys(ctx, nil); err != nil {
		return models.Session{}, err
	}
	if err = a.keyPair.EnsureKeyPair(ctx); err != nil {
		// an invalidated session cannot continue; a missing keypair can
		if !a.session.Authenticated() {
			return models.Session{}, err
		}
		log.Warn().Err(err).Str("func", "clientAuthService.Authenticate").Msg("continuing without a keypair")
	}

	log.Info().Str("func", "clientAuthService.Authenticate").Int("keys", ring.Len()).Msg("authenticated")
	return a.session.Info(), nil
}

// loginRing builds the ring of a fresh login: the derived key, the keys of
// an earlier session of the same account and whatever the login response
// carried.
func (a *clientAuthService) loginRing(ctx context.Context, email string, derived crypto.MasterKey, serverKeys string) *crypto.MasterKeyRing {
	ring := crypto.NewMasterKeyRing()

	if a.sessions != nil {
		prev, err := a.sessions.LoadSession(ctx)
		if err == nil && prev.Email == email {
			if stored, err := a.sessions.LoadMasterKeys(ctx); err == nil {
				ring.Merge(crypto.ParseMasterKeyRing(stored))
			}
		}
	}
	ring.Append(derived)

	if serverKeys != "" {
		plain, _, err := ring.DecryptOldestFirst(crypto.EncryptedString(serverKeys))
		if err != nil {
			a.logger.Warn().Err(err).Str("func", "clientAuthService.loginRing").Msg("could not decrypt master keys of login response")
			return ring
		}
		merged := crypto.ParseMasterKeyRing(plain)
		merged.Merge(ring)
		return merged
	}
	return ring
}

func (a *clientAuthService) persist(ctx context.Context, session models.Session, ring *crypto.MasterKeyRing) error {
	if a.sessions == nil {
		return nil
	}
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	if err := a.sessions.SaveMasterKeys(ctx, ring.Serialize()); err != nil {
		return fmt.Errorf("error saving master keys: %w", err)
	}
	return nil
}

// RestoreSession implements [ClientAuthService].
func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	if a.sessions == nil {
		return models.Session{}, ErrNotAuthenticated
	}

	session, err := a.sessions.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.Session{}, ErrNotAuthenticated
		}
		return models.Session{}, err
	}

	stored, err := a.sessions.LoadMasterKeys(ctx)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return models.Session{}, ErrNotAuthenticated
		}
		return models.Session{}, err
	}
	ring := crypto.ParseMasterKeyRing(stored)
	if ring.Len() == 0 {
		return models.Session{}, ErrNotAuthenticated
	}

	a.session.setInfo(session)
	a.session.setRing(ring)
	a.adapter.SetAPIKey(session.APIKey)

	pub, priv, err := a.sessions.LoadKeyPair(ctx)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
	case err != nil:
		a.logger.Warn().Err(err).Str("func", "clientAuthService.RestoreSession").Msg("failed to load key pair")
	default:
		if err = a.session.setKeyPair(crypto.KeyPair{PublicKey: pub, PrivateKey: priv}); err != nil {
			a.logger.Warn().Err(err).Str("func", "clientAuthService.RestoreSession").Msg("stored key pair is unusable")
		}
	}

	return session, nil
}

// Logout implements [ClientAuthService].
func (a *clientAuthService) Logout(ctx context.Context) error {
	a.session.reset()
	a.adapter.SetAPIKey("")
	if a.sessions == nil {
		return nil
	}
	return a.sessions.Clear(ctx)
}
