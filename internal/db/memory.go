package db

import (
	"sync"

	"github.com/minyanfinder/backend/internal/model"
)

// memStore is a map-backed Store with the same not-found semantics as the
// PostgreSQL implementation. Insertion order is preserved for listing.
type memStore struct {
	mu    sync.RWMutex
	items map[string]model.Broadcast
	order []string
}

var _ Store = (*memStore)(nil)

// NewMemoryStore returns an in-memory Store for tests.
func NewMemoryStore() Store {
	return &memStore{items: make(map[string]model.Broadcast)}
}

func (s *memStore) CreateBroadcast(b *model.Broadcast) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[b.ID]; !ok {
		s.order = append(s.order, b.ID)
	}
	s.items[b.ID] = *b
	return nil
}

func (s *memStore) GetBroadcastByID(id string) (model.Broadcast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.items[id]
	if !ok {
		return model.Broadcast{}, ErrNotFound
	}
	return b, nil
}

func (s *memStore) UpdateBroadcast(b *model.Broadcast) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[b.ID]; !ok {
		return ErrNotFound
	}
	s.items[b.ID] = *b
	return nil
}

func (s *memStore) DeleteBroadcast(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *memStore) ListActiveBroadcasts(minyanType *string) ([]model.Broadcast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	broadcasts := make([]model.Broadcast, 0, len(s.order))
	for _, id := range s.order {
		b := s.items[id]
		if !b.Active {
			continue
		}
		if minyanType != nil && b.MinyanType != *minyanType {
			continue
		}
		broadcasts = append(broadcasts, b)
	}
	return broadcasts, nil
}
