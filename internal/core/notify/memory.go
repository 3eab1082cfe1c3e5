package notify

import (
	"context"
	"sync"
)

// MemoryStore is a bounded in-process Store. Once full, the oldest
// notification is dropped on every save.
type MemoryStore struct {
	mu     sync.Mutex
	items  []Notification
	nextID int64
	limit  int
}

// NewMemoryStore returns a store that keeps at most limit notifications.
// A limit below one keeps everything.
func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{limit: limit}
}

func (s *MemoryStore) Save(_ context.Context, n Notification) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	n.ID = s.nextID
	s.items = append(s.items, n)
	if s.limit > 0 && len(s.items) > s.limit {
		s.items = s.items[len(s.items)-s.limit:]
	}
	return n.ID, nil
}

// List returns the history, newest first.
func (s *MemoryStore) List(_ context.Context) ([]Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, len(s.items))
	for i, n := range s.items {
		out[len(s.items)-1-i] = n
	}
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.items)), nil
}
