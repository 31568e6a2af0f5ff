package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
)

type sqliteKeyValueStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteKeyValueStore returns a [KeyValueStore] backed by the kv_store table.
func NewSQLiteKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	logger.Debug().Msg("creating sqlite key-value store")
	return &sqliteKeyValueStore{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, partition, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if !validPartition(partition) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPartition, partition)
	}

	query, args, err := buildGetValueQuery(partition, key)
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Get").Msg("error building query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrKeyNotFound
	case err != nil:
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Get").
			Str("partition", partition).
			Msg("failed to read value")
		return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStore) Set(ctx context.Context, partition, key string, value []byte) error {
	log := logger.FromContext(ctx)

	if !validPartition(partition) {
		return fmt.Errorf("%w: %q", ErrUnknownPartition, partition)
	}

	query, args, err := buildSetValueQuery(partition, key, value, s.now())
	if err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Set").Msg("error building query")
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if err = s.DB.execWithRetry(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Set").
			Str("partition", partition).
			Msg("failed to execute upsert")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Delete(ctx context.Context, partition, key string) error {
	log := logger.FromContext(ctx)

	if !validPartition(partition) {
		return fmt.Errorf("%w: %q", ErrUnknownPartition, partition)
	}

	query, args, err := buildDeleteValueQuery(partition, key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if err = s.DB.execWithRetry(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Delete").Msg("failed to delete value")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Clear(ctx context.Context, partition string) error {
	log := logger.FromContext(ctx)

	if !validPartition(partition) {
		return fmt.Errorf("%w: %q", ErrUnknownPartition, partition)
	}

	query, args, err := buildClearPartitionQuery(partition)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if err = s.DB.execWithRetry(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteKeyValueStore.Clear").Msg("failed to clear partition")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
