package store

import (
	"context"
	"sync"
)

type memoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage returns a [Storage] that lives as long as the process.
func NewMemoryStorage() Storage {
	return &memoryStorage{values: make(map[string]string)}
}

func (m *memoryStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *memoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	return nil
}

func (m *memoryStorage) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}

// nopStorage persists nothing; every Get misses.
type nopStorage struct{}

// NewNopStorage returns a [Storage] for contexts where nothing may be
// persisted.
func NewNopStorage() Storage {
	return nopStorage{}
}

func (nopStorage) Get(context.Context, string) (string, error) { return "", ErrKeyNotFound }
func (nopStorage) Set(context.Context, string, string) error   { return nil }
func (nopStorage) Remove(context.Context, string) error        { return nil }
