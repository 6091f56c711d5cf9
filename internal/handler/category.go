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

// CategoryHandler drives the category manager dialog: a single name
// field with case-insensitive uniqueness enforced at commit.
type CategoryHandler struct {
	mu     sync.Mutex
	Editor *editor.CategoryEditor
	Store  *store.CategoryStore
	Audit  queue.Publisher
}

func NewCategoryHandler(ed *editor.CategoryEditor, s *store.CategoryStore, audit queue.Publisher) *CategoryHandler {
	return &CategoryHandler{Editor: ed, Store: s, Audit: audit}
}

func (h *CategoryHandler) applyForm(f map[string]string) error {
	if name, ok := f["name"]; ok {
		return h.Editor.SetField("name", name)
	}
	return nil
}

// List handles GET /v1/categories.
func (h *CategoryHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Store.List()})
}

// Create handles POST /v1/categories.
func (h *CategoryHandler) Create(c echo.Context) error {
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
	cat, err := h.Editor.Submit()
	if err != nil {
		h.Editor.Cancel()
		return respondEditorErr(c, err)
	}

	publishAudit(h.Audit, queue.NewAuditEvent(actorName(c), queue.ActionCreate, "category", cat.ID, "created category "+cat.Name))
	return c.JSON(http.StatusCreated, cat)
}

// Update handles PUT /v1/categories/:id.
func (h *CategoryHandler) Update(c echo.Context) error {
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
	cat, err := h.Editor.Submit()
	if err != nil {
		h.Editor.Cancel()
		return respondEditorErr(c, err)
	}

	publishAudit(h.Audit, queue.NewAuditEvent(actorName(c), queue.ActionUpdate, "category", cat.ID, "updated category "+cat.Name))
	return c.JSON(http.StatusOK, cat)
}

// RequestDelete handles POST /v1/categories/:id/delete.
func (h *CategoryHandler) RequestDelete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := h.Editor.RequestDelete(id); err != nil {
		return respondEditorErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"state":  h.Editor.State().String(),
		"prompt": "Are you sure you want to delete this category?",
	})
}

// ConfirmDelete handles POST /v1/categories/:id/delete/confirm.
func (h *CategoryHandler) ConfirmDelete(c echo.Context) error {
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

	publishAudit(h.Audit, queue.NewAuditEvent(actorName(c), queue.ActionDelete, "category", deleted, fmt.Sprintf("deleted category #%d", deleted)))
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}

// CancelDelete handles POST /v1/categories/:id/delete/cancel.
func (h *CategoryHandler) CancelDelete(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.Editor.CancelDelete(); err != nil {
		return respondEditorErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
