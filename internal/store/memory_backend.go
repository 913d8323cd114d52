package store

import (
	"context"
	"sync"
)

// MemoryBackend is a map-backed Backend for tests and throwaway runs.
type MemoryBackend struct {
	mu    sync.Mutex
	blobs map[string][]byte

	// FailNext makes every call fail with this error until cleared.
	FailNext error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailNext != nil {
		return nil, false, b.FailNext
	}
	data, ok := b.blobs[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (b *MemoryBackend) Save(ctx context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailNext != nil {
		return b.FailNext
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	b.blobs[key] = cp
	return nil
}
