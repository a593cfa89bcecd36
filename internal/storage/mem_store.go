package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemStore is a map-backed Store for tests and ephemeral runs.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]json.RawMessage)}
}

func (s *MemStore) Read(_ context.Context, key string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[key]
	if !ok {
		return nil, false
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out, true
}

func (s *MemStore) Write(_ context.Context, key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		return false
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return true
}

func (s *MemStore) Remove(_ context.Context, key string) bool {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return true
}
