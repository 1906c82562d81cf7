package storage

import (
	"context"
	"sync"
)

// MemoryBackend keeps documents in a map. Failures can be injected for tests.
type MemoryBackend struct {
	mu       sync.RWMutex
	data     map[string][]byte
	PutError error
}

// NewMemoryBackend returns an empty backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryBackend) Put(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutError != nil {
		return m.PutError
	}
	v := make([]byte, len(payload))
	copy(v, payload)
	m.data[key] = v
	return nil
}

// Set stores a raw payload, bypassing the codec.
func (m *MemoryBackend) Set(key string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = payload
}

func (m *MemoryBackend) Close() error { return nil }
