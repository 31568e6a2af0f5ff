package store

import (
	"context"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"
)

// ErrorClassification is the result type returned by [ClassifySQLiteError].
// It indicates whether a failed database operation should be retried or
// abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations and I/O failures.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again, e.g. when another process holds the database lock.
	Retryable
)

const (
	writeRetryAttempts = 3
	writeRetryDelay    = 20 * time.Millisecond
)

// ClassifySQLiteError maps a go-sqlite3 error to an [ErrorClassification].
//
// Retryable codes:
//   - SQLITE_BUSY: the database file is locked by another connection
//   - SQLITE_LOCKED: a table in the database is locked
//
// Everything else, including errors of other drivers, is [NonRetryable].
func ClassifySQLiteError(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}
	return NonRetryable
}

// execWithRetry runs a write statement, repeating it while the database
// reports a transient lock.
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) error {
	backoff := retry.WithMaxRetries(writeRetryAttempts, retry.NewConstant(writeRetryDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		_, err := db.ExecContext(ctx, query, args...)
		if ClassifySQLiteError(err) == Retryable {
			db.logger.Debug().Err(err).Msg("database is locked, retrying write")
			return retry.RetryableError(err)
		}
		return err
	})
}
