package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/adilbekov/catalog-admin/internal/model"
	"github.com/adilbekov/catalog-admin/internal/store"
)

func TestDashboardOverview(t *testing.T) {
	products := store.NewProductStore()
	products.Replace([]model.Product{
		{ID: 1, Name: "A", Stock: 45, Status: model.StatusActive},
		{ID: 2, Name: "B", Stock: 8, Status: model.StatusLowStock},
		{ID: 3, Name: "C", Stock: 0, Status: model.StatusOutOfStock},
	})
	users := store.NewUserStore()
	users.Replace([]model.User{
		{ID: 1, Name: "U1", Status: model.UserStatusActive},
		{ID: 2, Name: "U2", Status: model.UserStatusInactive},
	})
	categories := store.NewCategoryStore()
	categories.Replace([]model.Category{{ID: 1, Name: "Clothing"}})

	h := NewDashboardHandler(products, users, categories)
	rec := doJSON(t, http.MethodGet, "/v1/dashboard", "", nil, h.Overview)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Stats struct {
			TotalProducts int `json:"total_products"`
			TotalUsers    int `json:"total_users"`
			ActiveUsers   int `json:"active_users"`
			Categories    int `json:"categories"`
			LowStock      int `json:"low_stock"`
			OutOfStock    int `json:"out_of_stock"`
		} `json:"stats"`
		RecentProducts []model.Product `json:"recent_products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	s := body.Stats
	if s.TotalProducts != 3 || s.TotalUsers != 2 || s.ActiveUsers != 1 ||
		s.Categories != 1 || s.LowStock != 1 || s.OutOfStock != 1 {
		t.Fatalf("stats = %+v", s)
	}
	// Newest first.
	if len(body.RecentProducts) != 3 || body.RecentProducts[0].ID != 3 {
		t.Fatalf("recent products = %+v", body.RecentProducts)
	}
}
