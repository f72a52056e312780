package history

import (
	"context"
	"sync"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

// MemoryStore keeps recent entries in a fixed-capacity buffer. It is the
// default backend and is also used by tests.
type MemoryStore struct {
	mu       sync.RWMutex
	capacity int
	entries  []Entry
}

// NewMemoryStore creates an in-memory history store. Capacity values at or
// below zero fall back to the default.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = constants.DefaultHistoryCapacity
	}
	return &MemoryStore{capacity: capacity}
}

// Save appends an entry, evicting the oldest once capacity is reached.
func (s *MemoryStore) Save(ctx context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[len(s.entries)-s.capacity:]
	}
	return nil
}

// List returns entries most recent first, optionally filtered by calculator.
func (s *MemoryStore) List(ctx context.Context, calculator string, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = constants.DefaultHistoryLimit
	}

	results := make([]Entry, 0, limit)
	for i := len(s.entries) - 1; i >= 0 && len(results) < limit; i-- {
		if calculator != "" && s.entries[i].Calculator != calculator {
			continue
		}
		results = append(results, s.entries[i])
	}
	return results, nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}
