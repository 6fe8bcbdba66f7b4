package session

import (
	"errors"
	"sync"
)

// Fixed storage keys, mirroring what the browser build keeps in local storage.
const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
	KeyCart  = "cart_item"
)

var ErrNotFound = errors.New("session: key not found")

// Store is the opaque key-value persistence surface. Writes are
// last-write-wins; there are no transactions across keys.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// MemoryStore is the in-memory Store used by tests and throwaway sessions.
type MemoryStore struct {
	mu sync.Mutex
	m  map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{m: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.m[key] = v
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
