package service

import (
	"context"
	"crypto/rsa"
	"errors"
	"sync"

	"github.com/MKhiriev/go-cloud-keeper/internal/adapter"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
	"github.com/MKhiriev/go-cloud-keeper/internal/utils"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// ClientSession is the in-memory state of an authenticated client. The
// plaintext private key never leaves it except towards the local store.
type ClientSession struct {
	// ringMu serializes ring updates together with their persistence.
	ringMu sync.Mutex

	mu         sync.RWMutex
	info       models.Session
	ring       *crypto.MasterKeyRing
	keyPair    crypto.KeyPair
	privateKey *rsa.PrivateKey
}

func NewClientSession() *ClientSession {
	return &ClientSession{}
}

// Info returns the persisted part of the session.
func (s *ClientSession) Info() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// Authenticated reports whether a ring is loaded.
func (s *ClientSession) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ring != nil && s.ring.Len() > 0
}

// Ring returns the master key ring shared by all services.
func (s *ClientSession) Ring() (*crypto.MasterKeyRing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ring == nil || s.ring.Len() == 0 {
		return nil, ErrNotAuthenticated
	}
	return s.ring, nil
}

// PrivateKey returns the parsed private key, or [ErrKeyPairUnavailable].
func (s *ClientSession) PrivateKey() (*rsa.PrivateKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.privateKey == nil {
		return nil, ErrKeyPairUnavailable
	}
	return s.privateKey, nil
}

// KeyPair returns the plaintext keypair and whether one is loaded.
func (s *ClientSession) KeyPair() (crypto.KeyPair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyPair, s.privateKey != nil
}

func (s *ClientSession) setInfo(info models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = info
}

func (s *ClientSession) setRing(ring *crypto.MasterKeyRing) {
	s.ringMu.Lock()
	defer s.ringMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ring = ring
}

// updateRing replaces the live ring with mutate(live) and hands the result to
// save. Updates run one at a time and always start from the live ring, so no
// update loses a key another one added and the stored ring matches the live
// one. mutate must return a new ring and leave live untouched. changed is
// false, and save is skipped, when the result equals the live ring.
func (s *ClientSession) updateRing(
	ctx context.Context,
	mutate func(live *crypto.MasterKeyRing) *crypto.MasterKeyRing,
	save func(ctx context.Context, serialized string) error,
) (ring *crypto.MasterKeyRing, changed bool, err error) {
	s.ringMu.Lock()
	defer s.ringMu.Unlock()

	s.mu.Lock()
	live := s.ring
	if live == nil || live.Len() == 0 {
		s.mu.Unlock()
		return nil, false, ErrNotAuthenticated
	}
	next := mutate(live)
	if next == nil || next.Serialize() == live.Serialize() {
		s.mu.Unlock()
		return live, false, nil
	}
	s.ring = next
	s.mu.Unlock()

	if save == nil {
		return next, true, nil
	}
	return next, true, save(ctx, next.Serialize())
}

// setKeyPair loads kp after checking both halves belong together.
func (s *ClientSession) setKeyPair(kp crypto.KeyPair) error {
	if err := kp.Matches(); err != nil {
		return err
	}
	priv, err := crypto.ParsePrivateKey(kp.PrivateKey)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyPair = kp
	s.privateKey = priv
	return nil
}

func (s *ClientSession) reset() {
	s.ringMu.Lock()
	defer s.ringMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = models.Session{}
	s.ring = nil
	s.keyPair = crypto.KeyPair{}
	s.privateKey = nil
}

// nameHasher keys the name hash with the oldest master key, which stays in
// the ring for the lifetime of the account.
func nameHasher(ring *crypto.MasterKeyRing) *utils.NameHasher {
	keys := ring.Keys()
	return utils.NewNameHasher(string(keys[0]))
}

// sessionGuard turns adapter failures into service errors. A rejected API
// key wipes the local session and notifies the observer.
type sessionGuard struct {
	session  *ClientSession
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	observer KeyEventObserver
	logger   *logger.Logger
}

func (g *sessionGuard) check(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, adapter.ErrSessionInvalid) {
		g.invalidate(ctx, err)
	}
	return mapAdapterError(err)
}

func (g *sessionGuard) invalidate(ctx context.Context, cause error) {
	g.logger.Error().Err(cause).Str("func", "sessionGuard.invalidate").Msg("server rejected the session, clearing local state")

	g.session.reset()
	g.adapter.SetAPIKey("")
	if g.sessions != nil {
		if err := g.sessions.Clear(ctx); err != nil {
			g.logger.Warn().Err(err).Str("func", "sessionGuard.invalidate").Msg("failed to clear local session")
		}
	}
	g.observer.SessionInvalidated(cause)
}
