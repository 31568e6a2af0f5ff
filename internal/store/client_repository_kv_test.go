package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
)

var fixedNow = time.UnixMilli(1700000000000)

func newTestKVStore(t *testing.T) (*sqliteKeyValueStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &sqliteKeyValueStore{
		DB:     &DB{DB: db, logger: l},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}, mock
}

func TestSQLiteKV_Get_Success(t *testing.T) {
	s, mock := newTestKVStore(t)

	mock.ExpectQuery("SELECT item_value FROM kv_store").
		WithArgs(PartitionDefault, "session").
		WillReturnRows(sqlmock.NewRows([]string{"item_value"}).AddRow([]byte("payload")))

	got, err := s.Get(context.Background(), PartitionDefault, "session")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Get_NotFound(t *testing.T) {
	s, mock := newTestKVStore(t)

	mock.ExpectQuery("SELECT item_value FROM kv_store").
		WithArgs(PartitionMetadata, "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), PartitionMetadata, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSQLiteKV_Get_DBError(t *testing.T) {
	s, mock := newTestKVStore(t)

	mock.ExpectQuery("SELECT item_value FROM kv_store").
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Get(context.Background(), PartitionDefault, "k")
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestSQLiteKV_UnknownPartition(t *testing.T) {
	s, mock := newTestKVStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "secrets", "k")
	assert.ErrorIs(t, err, ErrUnknownPartition)
	assert.ErrorIs(t, s.Set(ctx, "secrets", "k", nil), ErrUnknownPartition)
	assert.ErrorIs(t, s.Delete(ctx, "secrets", "k"), ErrUnknownPartition)
	assert.ErrorIs(t, s.Clear(ctx, "secrets"), ErrUnknownPartition)

	// nothing reaches the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Set_Upserts(t *testing.T) {
	s, mock := newTestKVStore(t)

	mock.ExpectExec("INSERT INTO kv_store .* ON CONFLICT").
		WithArgs(PartitionDefault, "masterKeys", []byte("a|b"), fixedNow.UnixMilli()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), PartitionDefault, "masterKeys", []byte("a|b")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Set_DBError(t *testing.T) {
	s, mock := newTestKVStore(t)

	mock.ExpectExec("INSERT INTO kv_store").
		WillReturnError(errors.New("database is locked"))

	err := s.Set(context.Background(), PartitionDefault, "k", []byte("v"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteKV_Set_RetriesWhileLocked(t *testing.T) {
	s, mock := newTestKVStore(t)

	mock.ExpectExec("INSERT INTO kv_store").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectExec("INSERT INTO kv_store").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrLocked})
	mock.ExpectExec("INSERT INTO kv_store").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), PartitionDefault, "k", []byte("v")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Set_GivesUpWhenLockPersists(t *testing.T) {
	s, mock := newTestKVStore(t)

	for range writeRetryAttempts + 1 {
		mock.ExpectExec("INSERT INTO kv_store").
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	}

	err := s.Set(context.Background(), PartitionDefault, "k", []byte("v"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassifySQLiteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"locked wrapped", fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), Retryable},
		{"constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, NonRetryable},
		{"io", sqlite3.Error{Code: sqlite3.ErrIoErr}, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySQLiteError(tt.err))
		})
	}
}

func TestSQLiteKV_Delete(t *testing.T) {
	s, mock := newTestKVStore(t)

	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs(PartitionDefault, "linkKey:abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Delete(context.Background(), PartitionDefault, "linkKey:abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Clear(t *testing.T) {
	s, mock := newTestKVStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_store WHERE part_name = ?")).
		WithArgs(PartitionMetadata).
		WillReturnResult(sqlmock.NewResult(0, 12))

	require.NoError(t, s.Clear(context.Background(), PartitionMetadata))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKV_Clear_DBError(t *testing.T) {
	s, mock := newTestKVStore(t)

	mock.ExpectExec("DELETE FROM kv_store").
		WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, s.Clear(context.Background(), PartitionDefault), ErrExecutingStatement)
}
