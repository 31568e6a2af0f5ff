package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cloud-keeper/internal/config"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/mock"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

const (
	testEmail    = "alice@example.com"
	testPassword = "correct horse battery"
)

// testDeps bundles the mocks most service tests need.
type testDeps struct {
	deps     Dependencies
	adapter  *mock.MockServerAdapter
	keyChain *mock.MockKeyChainService
	observer *mock.MockKeyEventObserver
	storages *store.ClientStorages
	session  *ClientSession
}

func newTestDeps(t *testing.T, ctrl *gomock.Controller) *testDeps {
	t.Helper()

	storages, err := store.NewClientStorages(config.ClientStorage{DB: config.ClientDB{DSN: store.MemoryDSN}}, logger.Nop())
	require.NoError(t, err)

	td := &testDeps{
		adapter:  mock.NewMockServerAdapter(ctrl),
		keyChain: mock.NewMockKeyChainService(ctrl),
		observer: mock.NewMockKeyEventObserver(ctrl),
		storages: storages,
		session:  NewClientSession(),
	}
	td.deps = Dependencies{
		Adapter:       td.adapter,
		Storages:      storages,
		KeyChain:      td.keyChain,
		Session:       td.session,
		Observer:      td.observer,
		Logger:        logger.Nop(),
		RetryAttempts: 2,
		RetryDelay:    time.Millisecond,
	}
	return td
}

// login puts the session into the authenticated state with the given ring.
func (td *testDeps) login(t *testing.T, keys ...crypto.MasterKey) *crypto.MasterKeyRing {
	t.Helper()
	ring := crypto.NewMasterKeyRing(keys...)
	td.session.setInfo(models.Session{Email: testEmail, APIKey: "api-key", UserID: 7, AuthVersion: 2})
	td.session.setRing(ring)
	require.NoError(t, td.storages.Session.SaveMasterKeys(context.Background(), ring.Serialize()))
	return ring
}

var (
	testKeyPairOnce sync.Once
	testKeyPair     crypto.KeyPair
	testKeyPairErr  error
)

// sharedKeyPair generates one RSA keypair for the whole test binary.
func sharedKeyPair(t *testing.T) crypto.KeyPair {
	t.Helper()
	testKeyPairOnce.Do(func() {
		testKeyPair, testKeyPairErr = crypto.GenerateKeyPair(2048)
	})
	require.NoError(t, testKeyPairErr)
	return testKeyPair
}

func encryptRing(t *testing.T, encryptWith crypto.MasterKey, keys ...crypto.MasterKey) string {
	t.Helper()
	blob, err := crypto.EncryptMetadata(crypto.NewMasterKeyRing(keys...).Serialize(), string(encryptWith))
	require.NoError(t, err)
	return string(blob)
}

// countingMetrics records dropped items per source.
type countingMetrics struct {
	tasks   atomic.Int64
	mu      sync.Mutex
	dropped map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{dropped: map[string]int{}}
}

func (m *countingMetrics) ObserveTask(string, time.Duration, error) { m.tasks.Add(1) }

func (m *countingMetrics) ObserveDroppedItem(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropped[source]++
}

func (m *countingMetrics) droppedFor(source models.ListingSource) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dropped[string(source)]
}
