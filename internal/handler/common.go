// Package handler implements the HTTP endpoints of the admin panel. The
// catalog, user and category handlers do not mutate the stores directly:
// every write runs through the record editor state machine, with one
// editing session at a time per entity type.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adilbekov/catalog-admin/internal/editor"
	"github.com/adilbekov/catalog-admin/internal/queue"
)

// respondEditorErr maps editor failures onto HTTP responses. Validation
// failures carry their user-facing message; the dialog message is the
// transient notification the panel would show.
func respondEditorErr(c echo.Context, err error) error {
	var v *editor.ValidationError
	switch {
	case errors.As(err, &v):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": v.Message})
	case errors.Is(err, editor.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, editor.ErrSessionOpen):
		return c.JSON(http.StatusConflict, echo.Map{"error": "another editing session is open"})
	case errors.Is(err, editor.ErrNoSession):
		return c.JSON(http.StatusConflict, echo.Map{"error": "no editing session is open"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}
}

// actorName returns the display name of the authenticated account for
// audit events.
func actorName(c echo.Context) string {
	if name, ok := c.Get("user_name").(string); ok && name != "" {
		return name
	}
	return "unknown"
}

// publishAudit ships an audit event off the request path. Failures are
// the publisher's problem; a broker outage never affects the response.
func publishAudit(pub queue.Publisher, ev queue.AuditEvent) {
	if pub == nil {
		return
	}
	go func() { _ = pub.Publish(ev) }()
}
