package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// MemoryDSN selects the in-process store instead of a SQLite file.
const MemoryDSN = "memory"

type memoryKeyValueStore struct {
	mu         sync.RWMutex
	partitions map[string]map[string][]byte
}

// NewMemoryKeyValueStore returns a [KeyValueStore] that lives only as long
// as the process. Values are copied on the way in and out.
func NewMemoryKeyValueStore() KeyValueStore {
	partitions := make(map[string]map[string][]byte, len(Partitions))
	for _, p := range Partitions {
		partitions[p] = make(map[string][]byte)
	}
	return &memoryKeyValueStore{partitions: partitions}
}

func (m *memoryKeyValueStore) Get(_ context.Context, partition, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.partitions[partition]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPartition, partition)
	}
	v, ok := p[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

func (m *memoryKeyValueStore) Set(_ context.Context, partition, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.partitions[partition]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPartition, partition)
	}
	p[key] = slices.Clone(value)
	return nil
}

func (m *memoryKeyValueStore) Delete(_ context.Context, partition, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.partitions[partition]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPartition, partition)
	}
	delete(p, key)
	return nil
}

func (m *memoryKeyValueStore) Clear(_ context.Context, partition string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.partitions[partition]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPartition, partition)
	}
	m.partitions[partition] = make(map[string][]byte)
	return nil
}
