package store

import (
	"strings"
	"sync"

	"github.com/adilbekov/catalog-admin/internal/model"
)

// UserStore owns the account collection. Semantics match ProductStore:
// insertion order, silent no-op on unknown ids.
type UserStore struct {
	mu    sync.RWMutex
	items []model.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// List returns a copy of the collection in insertion order.
func (s *UserStore) List() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the user with the given id, if present.
func (s *UserStore) Get(id uint64) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.items {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// GetByEmail looks an account up by its login email, case-insensitively.
func (s *UserStore) GetByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.items {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return model.User{}, false
}

// Len reports the current collection size.
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// NextID returns max(existing ids, 0) + 1.
func (s *UserStore) NextID() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var max uint64
	for _, u := range s.items {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// Create appends the record; the id must already be assigned.
func (s *UserStore) Create(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, u)
}

// Update replaces the single element whose id matches, or does nothing.
func (s *UserStore) Update(id uint64, u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			u.ID = id
			s.items[i] = u
			return
		}
	}
}

// Delete removes the single element whose id matches, or does nothing.
func (s *UserStore) Delete(id uint64) {
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
func (s *UserStore) Replace(items []model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items[:0:0], items...)
}
