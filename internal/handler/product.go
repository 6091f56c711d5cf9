package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/adilbekov/catalog-admin/internal/editor"
	"github.com/adilbekov/catalog-admin/internal/queue"
	"github.com/adilbekov/catalog-admin/internal/store"
)

// ProductHandler drives the catalog page. The mutex serializes editor
// sessions: the editor models a single open dialog, so requests take
// turns. Create and update run a full open-fill-submit cycle within one
// request; the delete confirmation spans requests on purpose.
type ProductHandler struct {
	mu     sync.Mutex
	Editor *editor.ProductEditor
	Store  *store.ProductStore
	Audit  queue.Publisher
}

func NewProductHandler(ed *editor.ProductEditor, s *store.ProductStore, audit queue.Publisher) *ProductHandler {
	return &ProductHandler{Editor: ed, Store: s, Audit: audit}
}

// productFields are the dialog's field names in form order. The payload
// is a map so an omitted field leaves the prefilled draft value alone;
// numeric fields arrive as free-form text and are parsed at commit.
var productFields = []string{"name", "category", "price", "stock", "description", "status"}

func (h *ProductHandler) applyForm(f map[string]string) error {
	for _, name := range productFields {
		if value, ok := f[name]; ok {
			if err := h.Editor.SetField(name, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// List handles GET /v1/products.
func (h *ProductHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Store.List()})
}

// Create handles POST /v1/products: a full create dialog session.
func (h *ProductHandler) Create(c echo.Context) error {
	var f map[string]string
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.Editor.AddNew(); err != nil {
		return respondEditorErr(c, err)
	}
	if err := h.applyForm(f); err != nil {
		h.Editor.Cancel()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	p, err := h.Editor.Submit()
	if err != nil {
		h.Editor.Cancel()
		return respondEditorErr(c, err)
	}

	publishAudit(h.Audit, queue.NewAuditEvent(actorName(c), queue.ActionCreate, "product", p.ID, "created product "+p.Name))
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /v1/products/:id: an edit dialog session.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var f map[string]string
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.Editor.Edit(id); err != nil {
		return respondEditorErr(c, err)
	}
	if err := h.applyForm(f); err != nil {
		h.Editor.Cancel()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	p, err := h.Editor.Submit()
	if err != nil {
		h.Editor.Cancel()
		return respondEditorErr(c, err)
	}

	publishAudit(h.Audit, queue.NewAuditEvent(actorName(c), queue.ActionUpdate, "product", p.ID, "updated product "+p.Name))
	return c.JSON(http.StatusOK, p)
}

// RequestDelete handles POST /v1/products/:id/delete. It opens the
// pending-delete confirmation and returns the prompt the panel shows.
func (h *ProductHandler) RequestDelete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	p, err := h.Editor.RequestDelete(id)
	if err != nil {
		return respondEditorErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"state":  h.Editor.State().String(),
		"prompt": fmt.Sprintf("Are you sure you want to delete %s?", p.Name),
	})
}

// ConfirmDelete handles POST /v1/products/:id/delete/confirm.
func (h *ProductHandler) ConfirmDelete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.Editor.State() != editor.StatePendingDelete || h.Editor.Target() != id {
		return c.JSON(http.StatusConflict, echo.Map{"error": "no pending delete for this record"})
	}
	deleted, err := h.Editor.ConfirmDelete()
	if err != nil {
		return respondEditorErr(c, err)
	}

	publishAudit(h.Audit, queue.NewAuditEvent(actorName(c), queue.ActionDelete, "product", deleted, fmt.Sprintf("deleted product #%d", deleted)))
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}

// CancelDelete handles POST /v1/products/:id/delete/cancel. Declining
// leaves the collection untouched.
func (h *ProductHandler) CancelDelete(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.Editor.CancelDelete(); err != nil {
		return respondEditorErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
