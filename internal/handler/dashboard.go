package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adilbekov/catalog-admin/internal/model"
	"github.com/adilbekov/catalog-admin/internal/store"
)

// DashboardHandler computes the overview cards from the live collections.
type DashboardHandler struct {
	Products   *store.ProductStore
	Users      *store.UserStore
	Categories *store.CategoryStore
}

func NewDashboardHandler(p *store.ProductStore, u *store.UserStore, c *store.CategoryStore) *DashboardHandler {
	return &DashboardHandler{Products: p, Users: u, Categories: c}
}

// Overview handles GET /v1/dashboard.
func (h *DashboardHandler) Overview(c echo.Context) error {
	products := h.Products.List()
	users := h.Users.List()

	var lowStock, outOfStock int
	for _, p := range products {
		switch p.Status {
		case model.StatusLowStock:
			lowStock++
		case model.StatusOutOfStock:
			outOfStock++
		}
	}

	var activeUsers int
	for _, u := range users {
		if u.Status == model.UserStatusActive {
			activeUsers++
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"stats": echo.Map{
			"total_products": len(products),
			"total_users":    len(users),
			"active_users":   activeUsers,
			"categories":     h.Categories.Len(),
			"low_stock":      lowStock,
			"out_of_stock":   outOfStock,
		},
		"recent_products": tailProducts(products, 5),
		"recent_users":    tailUsers(users, 5),
	})
}

// tailProducts returns the most recently added records, newest first.
func tailProducts(items []model.Product, n int) []model.Product {
	out := make([]model.Product, 0, n)
	for i := len(items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, items[i])
	}
	return out
}

func tailUsers(items []model.User, n int) []model.User {
	out := make([]model.User, 0, n)
	for i := len(items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, items[i])
	}
	return out
}
