package store

import (
	"context"

	"github.com/MKhiriev/go-cloud-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Partition names of the local key-value store.
const (
	// PartitionDefault holds the session, key material and link keys.
	PartitionDefault = "default"
	// PartitionMetadata caches decoded item metadata keyed by blob digest.
	PartitionMetadata = "metadata"
)

// Partitions lists every valid partition.
var Partitions = []string{PartitionDefault, PartitionMetadata}

// KeyValueStore is the opaque local persistence used by the services.
// Values are raw bytes; callers choose the encoding.
type KeyValueStore interface {
	Get(ctx context.Context, partition, key string) ([]byte, error)
	Set(ctx context.Context, partition, key string, value []byte) error
	Delete(ctx context.Context, partition, key string) error
	// Clear removes every key of a partition.
	Clear(ctx context.Context, partition string) error
}

// SessionRepository stores the authenticated state of the client in the
// default partition. Secrets are kept in the form the services use them:
// the serialized ring and the plaintext keypair never leave the device.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context) (models.Session, error)

	SaveMasterKeys(ctx context.Context, serializedRing string) error
	LoadMasterKeys(ctx context.Context) (string, error)

	SaveKeyPair(ctx context.Context, publicKey, privateKey string) error
	LoadKeyPair(ctx context.Context) (publicKey, privateKey string, err error)

	SaveLinkKey(ctx context.Context, linkUUID, key string) error
	LoadLinkKey(ctx context.Context, linkUUID string) (string, error)
	DeleteLinkKey(ctx context.Context, linkUUID string) error

	// Clear wipes the session and every key; used on logout and on an
	// invalidated session.
	Clear(ctx context.Context) error
}

// MetadataCache keeps decoded items so listings do not decrypt the same blob
// twice. scope identifies the key that decrypted the blob: an entry is only
// returned for the scope it was stored under.
type MetadataCache interface {
	Get(ctx context.Context, scope, blob string) (models.DecodedItem, bool)
	Put(ctx context.Context, scope, blob string, item models.DecodedItem)
	Clear(ctx context.Context) error
}

func validPartition(partition string) bool {
	for _, p := range Partitions {
		if p == partition {
			return true
		}
	}
	return false
}
