package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

type metadataCache struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewMetadataCache caches decoded items in the metadata partition of kv,
// keyed by the SHA-256 of the key scope and the encrypted blob. A cache failure never fails
// the caller: reads miss and writes are dropped.
func NewMetadataCache(kv KeyValueStore, logger *logger.Logger) MetadataCache {
	return &metadataCache{kv: kv, logger: logger}
}

func digest(scope, blob string) string {
	h := sha256.New()
	h.Write([]byte(scope))
	h.Write([]byte{0})
	h.Write([]byte(blob))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *metadataCache) Get(ctx context.Context, scope, blob string) (models.DecodedItem, bool) {
	raw, err := c.kv.Get(ctx, PartitionMetadata, digest(scope, blob))
	if err != nil {
		return models.DecodedItem{}, false
	}

	var item models.DecodedItem
	if err = json.Unmarshal(raw, &item); err != nil {
		c.logger.Debug().Err(err).Str("func", "metadataCache.Get").Msg("dropping corrupted cache entry")
		_ = c.kv.Delete(ctx, PartitionMetadata, digest(scope, blob))
		return models.DecodedItem{}, false
	}
	return item, true
}

func (c *metadataCache) Put(ctx context.Context, scope, blob string, item models.DecodedItem) {
	raw, err := json.Marshal(item)
	if err != nil {
		return
	}
	if err = c.kv.Set(ctx, PartitionMetadata, digest(scope, blob), raw); err != nil {
		c.logger.Debug().Err(err).Str("func", "metadataCache.Put").Msg("metadata cache write failed")
	}
}

func (c *metadataCache) Clear(ctx context.Context) error {
	return c.kv.Clear(ctx, PartitionMetadata)
}
