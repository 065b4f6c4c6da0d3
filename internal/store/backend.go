package store

import (
	"errors"
	"sync"
)

// ErrQuotaExceeded is returned by a Backend when a write exceeds the storage
// quota. The js backend maps the browser's QuotaExceededError to it.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Backend is the key/value surface the store persists through. In the
// browser this is window.localStorage; tests use MemoryBackend.
type Backend interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// MemoryBackend is an in-process Backend for native tests and headless use.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]string

	// Err, when set, is returned by every operation. Tests use it to
	// simulate unavailable storage.
	Err error
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func (b *MemoryBackend) Get(key string) (string, bool, error) {
	if b.Err != nil {
		return "", false, b.Err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	return v, ok, nil
}

func (b *MemoryBackend) Set(key, value string) error {
	if b.Err != nil {
		return b.Err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = value
	return nil
}

func (b *MemoryBackend) Remove(key string) error {
	if b.Err != nil {
		return b.Err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}
