package catalog

import (
	"context"
	"sync"
)

// MemStore keeps the catalog in memory. Insertion order of the seed is
// preserved so pages render products in catalog order.
type MemStore struct {
	mu    sync.RWMutex
	order []int64
	byID  map[int64]Product
}

func NewMemStore(products []Product) *MemStore {
	s := &MemStore{byID: make(map[int64]Product, len(products))}
	for _, p := range products {
		if _, dup := s.byID[p.ID]; dup {
			continue
		}
		s.order = append(s.order, p.ID)
		s.byID[p.ID] = p
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id int64) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	return p, ok, nil
}
