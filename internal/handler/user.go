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

// UserHandler drives the users page through the user editor. Session
// serialization works the same way as for products.
type UserHandler struct {
	mu     sync.Mutex
	Editor *editor.UserEditor
	Store  *store.UserStore
	Audit  queue.Publisher
}

func NewUserHandler(ed *editor.UserEditor, s *store.UserStore, audit queue.Publisher) *UserHandler {
	return &UserHandler{Editor: ed, Store: s, Audit: audit}
}

// userFields are the account dialog's field names. Fields omitted from
// the payload keep their prefilled draft values, so a partial update
// never blanks the stored role or status. Password fields matter only
// when creating; on an edit a blank password keeps the stored credential.
var userFields = []string{"name", "email", "role", "status", "password", "confirm_password"}

func (h *UserHandler) applyForm(f map[string]string) error {
	for _, name := range userFields {
		if value, ok := f[name]; ok {
			if err := h.Editor.SetField(name, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// List handles GET /v1/users.
func (h *UserHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Store.List()})
}

// Create handles POST /v1/users. A password mismatch aborts the commit
// and leaves the collection unchanged.
func (h *UserHandler) Create(c echo.Context) error {
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
	u, err := h.Editor.Submit()
	if err != nil {
		h.Editor.Cancel()
		return respondEditorErr(c, err)
	}

	publishAudit(h.Audit, queue.NewAuditEvent(actorName(c), queue.ActionCreate, "user", u.ID, "created user "+u.Name))
	return c.JSON(http.StatusCreated, u)
}

// Update handles PUT /v1/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
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
	u, err := h.Editor.Submit()
	if err != nil {
		h.Editor.Cancel()
		return respondEditorErr(c, err)
	}

	publishAudit(h.Audit, queue.NewAuditEvent(actorName(c), queue.ActionUpdate, "user", u.ID, "updated user "+u.Name))
	return c.JSON(http.StatusOK, u)
}

// RequestDelete handles POST /v1/users/:id/delete.
func (h *UserHandler) RequestDelete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	u, err := h.Editor.RequestDelete(id)
	if err != nil {
		return respondEditorErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"state":  h.Editor.State().String(),
		"prompt": fmt.Sprintf("Are you sure you want to delete %s?", u.Name),
	})
}

// ConfirmDelete handles POST /v1/users/:id/delete/confirm.
func (h *UserHandler) ConfirmDelete(c echo.Context) error {
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

	publishAudit(h.Audit, queue.NewAuditEvent(actorName(c), queue.ActionDelete, "user", deleted, fmt.Sprintf("deleted user #%d", deleted)))
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}

// CancelDelete handles POST /v1/users/:id/delete/cancel.
func (h *UserHandler) CancelDelete(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.Editor.CancelDelete(); err != nil {
		return respondEditorErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
