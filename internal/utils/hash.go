package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// NameHasher computes the keyed name hash the server uses to detect
// duplicate names in a folder without learning them. It keeps a pool of
// HMAC-SHA256 instances to avoid an allocation per item of a listing.
type NameHasher struct {
	pool sync.Pool
}

// NewNameHasher returns a hasher keyed with hashKey. The same key must be
// used for every name of an account, so it is derived from key material
// that survives password changes.
func NewNameHasher(hashKey string) *NameHasher {
	key := []byte(hashKey)
	return &NameHasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash returns the hex HMAC of the lower-cased name.
func (n *NameHasher) Hash(name string) string {
	h := n.pool.Get().(hash.Hash)
	defer func() {
		h.Reset()
		n.pool.Put(h)
	}()

	h.Write([]byte(strings.ToLower(name)))
	return hex.EncodeToString(h.Sum(nil))
}
