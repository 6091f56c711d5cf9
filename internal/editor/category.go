package editor

import (
	"fmt"
	"strings"

	"github.com/adilbekov/catalog-admin/internal/model"
	"github.com/adilbekov/catalog-admin/internal/store"
)

// CategoryDraft buffers a category's single editable field.
type CategoryDraft struct {
	Name string
}

// Set overwrites a draft field.
func (d *CategoryDraft) Set(name, value string) error {
	if name != "name" {
		return fmt.Errorf("unknown category field %q", name)
	}
	d.Name = value
	return nil
}

// CategoryEditor drives the simpler category workflow: a single name
// field with case-insensitive uniqueness enforced at commit.
type CategoryEditor struct {
	categories *store.CategoryStore
	state      State
	targetID   uint64
	draft      CategoryDraft
}

func NewCategoryEditor(categories *store.CategoryStore) *CategoryEditor {
	return &CategoryEditor{categories: categories}
}

// State returns the current session state.
func (e *CategoryEditor) State() State { return e.state }

// Target returns the id an edit or pending delete session points at.
func (e *CategoryEditor) Target() uint64 { return e.targetID }

// Draft returns a copy of the current draft.
func (e *CategoryEditor) Draft() CategoryDraft { return e.draft }

// AddNew opens a creation session with a blank name.
func (e *CategoryEditor) AddNew() error {
	if e.state != StateClosed {
		return ErrSessionOpen
	}
	e.draft = CategoryDraft{}
	e.targetID = 0
	e.state = StateCreating
	return nil
}

// Edit opens an editing session prefilled with the category's name.
func (e *CategoryEditor) Edit(id uint64) error {
	if e.state != StateClosed {
		return ErrSessionOpen
	}
	c, ok := e.categories.Get(id)
	if !ok {
		return ErrNotFound
	}
	e.draft = CategoryDraft{Name: c.Name}
	e.targetID = id
	e.state = StateEditing
	return nil
}

// SetField overwrites one draft field of the open session.
func (e *CategoryEditor) SetField(name, value string) error {
	if e.state != StateCreating && e.state != StateEditing {
		return ErrNoSession
	}
	return e.draft.Set(name, value)
}

// Cancel discards the draft and closes the session.
func (e *CategoryEditor) Cancel() {
	e.draft = CategoryDraft{}
	e.targetID = 0
	e.state = StateClosed
}

// Submit validates the name and commits. A blank name or a name already
// used by another category (compared case-insensitively, excluding the
// record being edited) aborts with the session left open.
func (e *CategoryEditor) Submit() (model.Category, error) {
	if e.state != StateCreating && e.state != StateEditing {
		return model.Category{}, ErrNoSession
	}

	name := strings.TrimSpace(e.draft.Name)
	if name == "" {
		return model.Category{}, invalidf("category name cannot be empty")
	}
	if e.categories.NameTaken(name, e.targetID) {
		return model.Category{}, invalidf("category already exists")
	}

	c := model.Category{Name: name}
	if e.state == StateCreating {
		c.ID = e.categories.NextID()
		e.categories.Create(c)
	} else {
		c.ID = e.targetID
		e.categories.Update(e.targetID, c)
	}

	e.Cancel()
	return c, nil
}

// RequestDelete opens a pending-delete session and returns the record.
func (e *CategoryEditor) RequestDelete(id uint64) (model.Category, error) {
	if e.state != StateClosed {
		return model.Category{}, ErrSessionOpen
	}
	c, ok := e.categories.Get(id)
	if !ok {
		return model.Category{}, ErrNotFound
	}
	e.targetID = id
	e.state = StatePendingDelete
	return c, nil
}

// ConfirmDelete removes the pending record and closes the session.
func (e *CategoryEditor) ConfirmDelete() (uint64, error) {
	if e.state != StatePendingDelete {
		return 0, ErrNoSession
	}
	id := e.targetID
	e.categories.Delete(id)
	e.Cancel()
	return id, nil
}

// CancelDelete declines the confirmation and leaves the collection
// untouched.
func (e *CategoryEditor) CancelDelete() error {
	if e.state != StatePendingDelete {
		return ErrNoSession
	}
	e.Cancel()
	return nil
}
