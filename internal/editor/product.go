package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adilbekov/catalog-admin/internal/model"
	"github.com/adilbekov/catalog-admin/internal/store"
)

// ProductDraft buffers one product's editable fields as strings while a
// dialog session is open. Numeric fields stay free-form text until commit.
type ProductDraft struct {
	Name        string
	Category    string
	Price       string
	Stock       string
	Description string
	Status      string
}

// Set overwrites a single draft field. No validation happens here; bad
// values surface at commit time.
func (d *ProductDraft) Set(name, value string) error {
	switch name {
	case "name":
		d.Name = value
	case "category":
		d.Category = value
	case "price":
		d.Price = value
	case "stock":
		d.Stock = value
	case "description":
		d.Description = value
	case "status":
		// Accepted for symmetry with the other drafts, but product status
		// is recomputed from stock at commit and this value is discarded.
		d.Status = value
	default:
		return fmt.Errorf("unknown product field %q", name)
	}
	return nil
}

func blankProductDraft(defaultCategory string) ProductDraft {
	return ProductDraft{Category: defaultCategory, Status: model.StatusActive}
}

func draftFromProduct(p model.Product) ProductDraft {
	return ProductDraft{
		Name:        p.Name,
		Category:    p.Category,
		Price:       strings.TrimPrefix(p.Price, "$"),
		Stock:       strconv.Itoa(p.Stock),
		Description: p.Description,
		Status:      p.Status,
	}
}

// ProductEditor drives the create/edit/delete workflow for the catalog
// page. It is not internally synchronized: one dialog is open at a time
// and the owning handler serializes access.
type ProductEditor struct {
	products   *store.ProductStore
	categories *store.CategoryStore
	state      State
	targetID   uint64
	draft      ProductDraft
}

func NewProductEditor(products *store.ProductStore, categories *store.CategoryStore) *ProductEditor {
	return &ProductEditor{products: products, categories: categories}
}

// State returns the current session state.
func (e *ProductEditor) State() State { return e.state }

// Target returns the id an edit or pending delete session points at.
func (e *ProductEditor) Target() uint64 { return e.targetID }

// Draft returns a copy of the current draft.
func (e *ProductEditor) Draft() ProductDraft { return e.draft }

// AddNew opens a creation session with a blank draft. The category
// defaults to the first available category name, status to Active.
func (e *ProductEditor) AddNew() error {
	if e.state != StateClosed {
		return ErrSessionOpen
	}
	var def string
	if first, ok := e.categories.First(); ok {
		def = first.Name
	}
	e.draft = blankProductDraft(def)
	e.targetID = 0
	e.state = StateCreating
	return nil
}

// Edit opens an editing session prefilled from the record's current
// values. The editor stays closed when the id is unknown.
func (e *ProductEditor) Edit(id uint64) error {
	if e.state != StateClosed {
		return ErrSessionOpen
	}
	p, ok := e.products.Get(id)
	if !ok {
		return ErrNotFound
	}
	e.draft = draftFromProduct(p)
	e.targetID = id
	e.state = StateEditing
	return nil
}

// SetField overwrites one draft field of the open session.
func (e *ProductEditor) SetField(name, value string) error {
	if e.state != StateCreating && e.state != StateEditing {
		return ErrNoSession
	}
	return e.draft.Set(name, value)
}

// Cancel discards the draft and closes the session without touching the
// store. Safe in every state.
func (e *ProductEditor) Cancel() {
	e.draft = ProductDraft{}
	e.targetID = 0
	e.state = StateClosed
}

// Submit validates the draft and commits it. On a validation failure the
// session stays open with the draft intact and no store mutation happens.
// On success the record is appended (creating) or replaced in place
// (editing), the session closes and the draft resets.
func (e *ProductEditor) Submit() (model.Product, error) {
	if e.state != StateCreating && e.state != StateEditing {
		return model.Product{}, ErrNoSession
	}

	name := strings.TrimSpace(e.draft.Name)
	if name == "" {
		return model.Product{}, invalidf("product name is required")
	}

	stock, err := strconv.Atoi(strings.TrimSpace(e.draft.Stock))
	if err != nil {
		return model.Product{}, invalidf("stock must be a whole number")
	}
	if stock < 0 {
		return model.Product{}, invalidf("stock cannot be negative")
	}

	price, err := parsePrice(e.draft.Price)
	if err != nil {
		return model.Product{}, invalidf("price must be a number")
	}
	if price.IsNegative() {
		return model.Product{}, invalidf("price cannot be negative")
	}

	p := model.Product{
		Name:        name,
		Category:    e.draft.Category,
		Price:       formatPrice(price),
		Stock:       stock,
		Status:      StockStatus(stock),
		Description: e.draft.Description,
	}

	if e.state == StateCreating {
		p.ID = e.products.NextID()
		e.products.Create(p)
	} else {
		p.ID = e.targetID
		e.products.Update(e.targetID, p)
	}

	e.Cancel()
	return p, nil
}

// RequestDelete opens a pending-delete session and returns the record so
// the caller can build a confirmation prompt.
func (e *ProductEditor) RequestDelete(id uint64) (model.Product, error) {
	if e.state != StateClosed {
		return model.Product{}, ErrSessionOpen
	}
	p, ok := e.products.Get(id)
	if !ok {
		return model.Product{}, ErrNotFound
	}
	e.targetID = id
	e.state = StatePendingDelete
	return p, nil
}

// ConfirmDelete removes the pending record and closes the session. If the
// record disappeared in the meantime the store delete is a no-op.
func (e *ProductEditor) ConfirmDelete() (uint64, error) {
	if e.state != StatePendingDelete {
		return 0, ErrNoSession
	}
	id := e.targetID
	e.products.Delete(id)
	e.Cancel()
	return id, nil
}

// CancelDelete declines the confirmation and leaves the collection
// untouched.
func (e *ProductEditor) CancelDelete() error {
	if e.state != StatePendingDelete {
		return ErrNoSession
	}
	e.Cancel()
	return nil
}
