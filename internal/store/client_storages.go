package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-cloud-keeper/internal/config"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// KeyValue is the raw partitioned store.
	KeyValue KeyValueStore
	// Session keeps the API key, the master key ring, the keypair and link keys.
	Session SessionRepository
	// Metadata caches decoded listing items.
	Metadata MetadataCache

	closer io.Closer
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist. The DSN "memory"
//     selects an in-process store instead.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the session repository and the metadata cache to the store.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		return newClientStorages(NewMemoryKeyValueStore(), nil, logger), nil
	}

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(NewSQLiteKeyValueStore(db, logger), db, logger), nil
}

func newClientStorages(kv KeyValueStore, closer io.Closer, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		KeyValue: kv,
		Session:  NewSessionRepository(kv, logger),
		Metadata: NewMetadataCache(kv, logger),
		closer:   closer,
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
