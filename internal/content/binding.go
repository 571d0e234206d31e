// Package content holds the repositories behind the admin editor: three
// JSON documents (portfolio, drops, settings), each stored under a fixed
// key in a Binding.
package content

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Binding.Read when no document exists at a key.
var ErrNotFound = errors.New("content: key not found")

// Binding is one named slot of durable storage. The production binding is
// the documents table in SQLite; tests use MemoryBinding.
type Binding interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
}

// MemoryBinding is a map-backed Binding.
type MemoryBinding struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewMemoryBinding() *MemoryBinding {
	return &MemoryBinding{docs: make(map[string][]byte)}
}

func (m *MemoryBinding) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryBinding) Write(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.docs[key] = stored
	return nil
}
