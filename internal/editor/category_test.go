package editor

import (
	"testing"

	"github.com/adilbekov/catalog-admin/internal/model"
	"github.com/adilbekov/catalog-admin/internal/store"
)

func newCategoryFixture(t *testing.T, names ...string) (*CategoryEditor, *store.CategoryStore) {
	t.Helper()
	categories := store.NewCategoryStore()
	items := make([]model.Category, len(names))
	for i, n := range names {
		items[i] = model.Category{ID: uint64(i + 1), Name: n}
	}
	categories.Replace(items)
	return NewCategoryEditor(categories), categories
}

func TestCategoryDuplicateNameCaseInsensitive(t *testing.T) {
	e, categories := newCategoryFixture(t, "shoes")

	if err := e.AddNew(); err != nil {
		t.Fatalf("AddNew: %v", err)
	}
	if err := e.SetField("name", "Shoes"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if _, err := e.Submit(); !IsValidation(err) {
		t.Fatalf("Submit error = %v, want validation error", err)
	}
	if categories.Len() != 1 {
		t.Fatalf("collection size = %d, want 1", categories.Len())
	}
}

func TestCategoryRenameExcludesSelf(t *testing.T) {
	e, categories := newCategoryFixture(t, "Shoes", "Hats")

	// Re-casing a category's own name must not count as a duplicate.
	if err := e.Edit(1); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if err := e.SetField("name", "SHOES"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	c, err := e.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if c.Name != "SHOES" {
		t.Fatalf("name = %q, want %q", c.Name, "SHOES")
	}

	// Renaming onto another record's name is still rejected.
	if err := e.Edit(2); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if err := e.SetField("name", "shoes"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if _, err := e.Submit(); !IsValidation(err) {
		t.Fatalf("Submit error = %v, want validation error", err)
	}
	stored, _ := categories.Get(2)
	if stored.Name != "Hats" {
		t.Fatalf("record mutated by rejected rename: %+v", stored)
	}
}

func TestCategoryBlankNameRejected(t *testing.T) {
	e, categories := newCategoryFixture(t)

	if err := e.AddNew(); err != nil {
		t.Fatalf("AddNew: %v", err)
	}
	if err := e.SetField("name", "   "); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if _, err := e.Submit(); !IsValidation(err) {
		t.Fatalf("Submit error = %v, want validation error", err)
	}
	if categories.Len() != 0 {
		t.Fatalf("collection size = %d, want 0", categories.Len())
	}
}

func TestCategoryNameTrimmedOnCommit(t *testing.T) {
	e, _ := newCategoryFixture(t)

	if err := e.AddNew(); err != nil {
		t.Fatalf("AddNew: %v", err)
	}
	if err := e.SetField("name", "  Bags  "); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	c, err := e.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if c.Name != "Bags" || c.ID != 1 {
		t.Fatalf("committed = %+v, want id 1, name Bags", c)
	}
}

func TestCategoryDeleteFlow(t *testing.T) {
	e, categories := newCategoryFixture(t, "Shoes", "Hats")

	if _, err := e.RequestDelete(1); err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	if _, err := e.ConfirmDelete(); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}
	if categories.Len() != 1 {
		t.Fatalf("collection size = %d, want 1", categories.Len())
	}
	if _, ok := categories.Get(1); ok {
		t.Fatal("record 1 still present after confirmed delete")
	}
}
