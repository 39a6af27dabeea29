package store

import (
	"context"
	"sync"
)

type memoryCredentialStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryCredentialStore returns a process-local [CredentialStore]. It is
// used when the client runs with an ephemeral profile and in tests.
func NewMemoryCredentialStore() CredentialStore {
	return &memoryCredentialStore{values: make(map[string]string)}
}

func (m *memoryCredentialStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *memoryCredentialStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memoryCredentialStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
