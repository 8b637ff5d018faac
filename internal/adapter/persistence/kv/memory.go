package kv

import (
	"context"
	"sync"
)

// MemoryStore keeps entries in process memory. Used by tests and by
// `serve --storage=memory`.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]Entry{}}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return Entry{}, false, nil
	}
	return Entry{Value: append([]byte(nil), e.Value...), Version: e.Version}, true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.entries[key]
	if (!ok && expectedVersion != 0) || (ok && current.Version != expectedVersion) {
		return 0, ErrVersionConflict
	}
	next := expectedVersion + 1
	s.entries[key] = Entry{Value: append([]byte(nil), value...), Version: next}
	return next, nil
}
