package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_store"
	kvPartition   = "part_name"
	kvKey         = "item_key"
	kvValue       = "item_value"
	kvUpdatedAt   = "updated_at"
	kvUpsertClash = "ON CONFLICT(" + kvPartition + ", " + kvKey + ") DO UPDATE SET " +
		kvValue + " = excluded." + kvValue + ", " +
		kvUpdatedAt + " = excluded." + kvUpdatedAt
)

// sqlite uses "?" placeholders.
var kvBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(partition, key string) (string, []any, error) {
	return kvBuilder.
		Select(kvValue).
		From(kvTable).
		Where(sq.And{sq.Eq{kvPartition: partition}, sq.Eq{kvKey: key}}).
		Limit(1).
		ToSql()
}

func buildSetValueQuery(partition, key string, value []byte, now time.Time) (string, []any, error) {
	return kvBuilder.
		Insert(kvTable).
		Columns(kvPartition, kvKey, kvValue, kvUpdatedAt).
		Values(partition, key, value, now.UnixMilli()).
		Suffix(kvUpsertClash).
		ToSql()
}

func buildDeleteValueQuery(partition, key string) (string, []any, error) {
	return kvBuilder.
		Delete(kvTable).
		Where(sq.And{sq.Eq{kvPartition: partition}, sq.Eq{kvKey: key}}).
		ToSql()
}

func buildClearPartitionQuery(partition string) (string, []any, error) {
	return kvBuilder.
		Delete(kvTable).
		Where(sq.Eq{kvPartition: partition}).
		ToSql()
}
