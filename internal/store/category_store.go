package store

import (
	"strings"
	"sync"

	"github.com/adilbekov/catalog-admin/internal/model"
)

// CategoryStore owns the category collection. Category names are unique
// case-insensitively; the editor enforces that before committing, the
// store only answers the lookup.
type CategoryStore struct {
	mu    sync.RWMutex
	items []model.Category
}

func NewCategoryStore() *CategoryStore {
	return &CategoryStore{}
}

// List returns a copy of the collection in insertion order.
func (s *CategoryStore) List() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the category with the given id, if present.
func (s *CategoryStore) Get(id uint64) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.items {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// Len reports the current collection size.
func (s *CategoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// First returns the first category in insertion order. New product drafts
// default their category to this record's name.
func (s *CategoryStore) First() (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.items) == 0 {
		return model.Category{}, false
	}
	return s.items[0], true
}

// NameTaken reports whether another category already uses the given name,
// ignoring case. The record with excludeID is skipped so an edit does not
// collide with itself.
func (s *CategoryStore) NameTaken(name string, excludeID uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.items {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// NextID returns max(existing ids, 0) + 1.
func (s *CategoryStore) NextID() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var max uint64
	for _, c := range s.items {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

// Create appends the record; the id must already be assigned.
func (s *CategoryStore) Create(c model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, c)
}

// Update replaces the single element whose id matches, or does nothing.
func (s *CategoryStore) Update(id uint64, c model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			c.ID = id
			s.items[i] = c
			return
		}
	}
}

// Delete removes the single element whose id matches, or does nothing.
func (s *CategoryStore) Delete(id uint64) {
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
func (s *CategoryStore) Replace(items []model.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items[:0:0], items...)
}
