package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

func TestMetadataCache_PutGet(t *testing.T) {
	kv := NewMemoryKeyValueStore()
	cache := NewMetadataCache(kv, logger.Nop())
	ctx := context.Background()

	_, ok := cache.Get(ctx, "k1", "002blob")
	assert.False(t, ok)

	item := models.DecodedItem{UUID: "u1", Type: models.ItemFile, Name: "report.pdf", Size: 42}
	cache.Put(ctx, "k1", "002blob", item)

	got, ok := cache.Get(ctx, "k1", "002blob")
	require.True(t, ok)
	assert.Equal(t, item, got)

	// keyed by digest, never by the blob itself
	_, err := kv.Get(ctx, PartitionMetadata, "002blob")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = kv.Get(ctx, PartitionMetadata, digest("k1", "002blob"))
	assert.NoError(t, err)
}

func TestMetadataCache_ScopedByKey(t *testing.T) {
	cache := NewMetadataCache(NewMemoryKeyValueStore(), logger.Nop())
	ctx := context.Background()

	cache.Put(ctx, "k1", "002blob", models.DecodedItem{UUID: "u1", Name: "secret.txt"})

	_, ok := cache.Get(ctx, "k2", "002blob")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "", "002blob")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "k1", "002blob")
	assert.True(t, ok)

	// the separator keeps scope and blob from running into each other
	assert.NotEqual(t, digest("k1", "002blob"), digest("k10", "02blob"))
}

func TestMetadataCache_CorruptedEntryIsDropped(t *testing.T) {
	kv := NewMemoryKeyValueStore()
	cache := NewMetadataCache(kv, logger.Nop())
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, PartitionMetadata, digest("k1", "blob"), []byte("garbage")))

	_, ok := cache.Get(ctx, "k1", "blob")
	assert.False(t, ok)

	_, err := kv.Get(ctx, PartitionMetadata, digest("k1", "blob"))
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMetadataCache_Clear(t *testing.T) {
	kv := NewMemoryKeyValueStore()
	cache := NewMetadataCache(kv, logger.Nop())
	ctx := context.Background()

	cache.Put(ctx, "k1", "a", models.DecodedItem{UUID: "a"})
	require.NoError(t, kv.Set(ctx, PartitionDefault, keySession, []byte("{}")))

	require.NoError(t, cache.Clear(ctx))

	_, ok := cache.Get(ctx, "k1", "a")
	assert.False(t, ok)
	_, err := kv.Get(ctx, PartitionDefault, keySession)
	assert.NoError(t, err)
}
