// Package store holds the canonical in-memory collections backing the
// admin panel. Collections keep insertion order: Create appends, Update
// replaces the matching element in place and Delete removes it. Updating
// or deleting an id that is not present is a silent no-op. There is no
// persistence; the collections live and die with the process.
package store

import (
	"sync"

	"github.com/adilbekov/catalog-admin/internal/model"
)

// ProductStore owns the product collection. It is safe for concurrent
// readers; writers are expected to be serialized by the editor that owns
// the mutation path.
type ProductStore struct {
	mu    sync.RWMutex
	items []model.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{}
}

// List returns a copy of the collection in insertion order.
func (s *ProductStore) List() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the product with the given id, if present.
func (s *ProductStore) Get(id uint64) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Len reports the current collection size.
func (s *ProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// NextID returns max(existing ids, 0) + 1. Ids are never reused while the
// highest record remains, mirroring how the panel always assigned ids.
func (s *ProductStore) NextID() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var max uint64
	for _, p := range s.items {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// Create appends the record. The caller must have assigned a fresh unique
// id already; the store performs no validation beyond that contract.
func (s *ProductStore) Create(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, p)
}

// Update replaces the single element whose id matches. When no element
// matches, the collection is left unchanged.
func (s *ProductStore) Update(id uint64, p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			p.ID = id
			s.items[i] = p
			return
		}
	}
}

// Delete removes the single element whose id matches, or does nothing.
func (s *ProductStore) Delete(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Replace swaps in a whole new collection.
func (s *ProductStore) Replace(items []model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items[:0:0], items...)
}
