package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when a partition holds no value for a key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnknownPartition is returned for a partition name outside [Partitions].
	ErrUnknownPartition = errors.New("unknown partition")

	// ErrLocalSessionNotFound is returned when no session was persisted.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a value row fails.
	ErrScanningRow = errors.New("failed to scan value row")

	// ErrEncodingValue is returned when a typed value cannot be (de)serialized.
	ErrEncodingValue = errors.New("failed to encode stored value")
)
