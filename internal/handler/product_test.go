package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/adilbekov/catalog-admin/internal/editor"
	"github.com/adilbekov/catalog-admin/internal/model"
	"github.com/adilbekov/catalog-admin/internal/queue"
	"github.com/adilbekov/catalog-admin/internal/store"
)

func newProductHandler(seed []model.Product) (*ProductHandler, *store.ProductStore) {
	products := store.NewProductStore()
	products.Replace(seed)
	categories := store.NewCategoryStore()
	store.SeedCategories(categories)
	ed := editor.NewProductEditor(products, categories)
	return NewProductHandler(ed, products, queue.NopPublisher{}), products
}

func doJSON(t *testing.T, method, target, body string, params map[string]string, fn echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	if err := fn(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestProductCreate(t *testing.T) {
	h, products := newProductHandler(nil)

	rec := doJSON(t, http.MethodPost, "/v1/products",
		`{"name":"Widget","category":"Clothing","price":"19.9","stock":"20"}`,
		nil, h.Create)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body)
	}
	var p model.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID != 1 || p.Price != "$19.90" || p.Status != model.StatusActive {
		t.Fatalf("created = %+v", p)
	}
	if products.Len() != 1 {
		t.Fatalf("collection size = %d, want 1", products.Len())
	}
}

func TestProductCreateRejectsBadStock(t *testing.T) {
	h, products := newProductHandler(nil)

	rec := doJSON(t, http.MethodPost, "/v1/products",
		`{"name":"Widget","price":"10","stock":"abc"}`,
		nil, h.Create)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body)
	}
	if products.Len() != 0 {
		t.Fatalf("collection size = %d, want 0", products.Len())
	}
	// A failed request must not leave a session open for the next one.
	rec = doJSON(t, http.MethodPost, "/v1/products",
		`{"name":"Widget","price":"10","stock":"5"}`,
		nil, h.Create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("follow-up status = %d, want 201; body %s", rec.Code, rec.Body)
	}
}

func TestProductUpdateUnknownID(t *testing.T) {
	h, _ := newProductHandler(nil)

	rec := doJSON(t, http.MethodPut, "/v1/products/42",
		`{"name":"Widget","price":"10","stock":"5"}`,
		map[string]string{"id": "42"}, h.Update)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body %s", rec.Code, rec.Body)
	}
}

func TestProductPartialUpdateKeepsOmittedFields(t *testing.T) {
	seed := []model.Product{{
		ID: 3, Name: "Sneakers", Category: "Footwear", Price: "$79.99",
		Stock: 12, Status: model.StatusActive, Description: "running shoes",
	}}
	h, products := newProductHandler(seed)

	// Only stock in the payload: the prefilled draft carries the rest.
	rec := doJSON(t, http.MethodPut, "/v1/products/3",
		`{"stock":"0"}`,
		map[string]string{"id": "3"}, h.Update)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
	stored, _ := products.Get(3)
	if stored.Stock != 0 || stored.Status != model.StatusOutOfStock {
		t.Errorf("stock/status = %d/%q, want 0/%q", stored.Stock, stored.Status, model.StatusOutOfStock)
	}
	if stored.Name != "Sneakers" || stored.Price != "$79.99" || stored.Description != "running shoes" {
		t.Errorf("partial update blanked omitted fields: %+v", stored)
	}
}

func TestProductDeleteFlow(t *testing.T) {
	seed := []model.Product{
		{ID: 1, Name: "T-Shirt", Price: "$19.99", Stock: 45, Status: model.StatusActive},
		{ID: 2, Name: "Jeans", Price: "$59.99", Stock: 8, Status: model.StatusLowStock},
	}
	h, products := newProductHandler(seed)

	rec := doJSON(t, http.MethodPost, "/v1/products/2/delete", "",
		map[string]string{"id": "2"}, h.RequestDelete)
	if rec.Code != http.StatusOK {
		t.Fatalf("request-delete status = %d; body %s", rec.Code, rec.Body)
	}
	var body struct {
		State  string `json:"state"`
		Prompt string `json:"prompt"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.State != "pending_delete" {
		t.Errorf("state = %q, want pending_delete", body.State)
	}
	if body.Prompt != "Are you sure you want to delete Jeans?" {
		t.Errorf("prompt = %q", body.Prompt)
	}

	rec = doJSON(t, http.MethodPost, "/v1/products/2/delete/confirm", "",
		map[string]string{"id": "2"}, h.ConfirmDelete)
	if rec.Code != http.StatusOK {
		t.Fatalf("confirm status = %d; body %s", rec.Code, rec.Body)
	}
	if products.Len() != 1 {
		t.Fatalf("collection size = %d, want 1", products.Len())
	}
}

func TestProductDeleteCancelKeepsRecord(t *testing.T) {
	seed := []model.Product{{ID: 1, Name: "T-Shirt", Price: "$19.99", Stock: 45, Status: model.StatusActive}}
	h, products := newProductHandler(seed)

	rec := doJSON(t, http.MethodPost, "/v1/products/1/delete", "",
		map[string]string{"id": "1"}, h.RequestDelete)
	if rec.Code != http.StatusOK {
		t.Fatalf("request-delete status = %d; body %s", rec.Code, rec.Body)
	}
	rec = doJSON(t, http.MethodPost, "/v1/products/1/delete/cancel", "",
		map[string]string{"id": "1"}, h.CancelDelete)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("cancel status = %d, want 204", rec.Code)
	}
	if products.Len() != 1 {
		t.Fatalf("collection size = %d, want 1", products.Len())
	}
}

func TestProductConfirmWithoutPending(t *testing.T) {
	seed := []model.Product{{ID: 1, Name: "T-Shirt", Price: "$19.99", Stock: 45, Status: model.StatusActive}}
	h, products := newProductHandler(seed)

	rec := doJSON(t, http.MethodPost, "/v1/products/1/delete/confirm", "",
		map[string]string{"id": "1"}, h.ConfirmDelete)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409; body %s", rec.Code, rec.Body)
	}
	if products.Len() != 1 {
		t.Fatalf("collection size = %d, want 1", products.Len())
	}
}

func TestProductConfirmWrongID(t *testing.T) {
	seed := []model.Product{
		{ID: 1, Name: "T-Shirt", Price: "$19.99", Stock: 45, Status: model.StatusActive},
		{ID: 2, Name: "Jeans", Price: "$59.99", Stock: 8, Status: model.StatusLowStock},
	}
	h, products := newProductHandler(seed)

	doJSON(t, http.MethodPost, "/v1/products/1/delete", "",
		map[string]string{"id": "1"}, h.RequestDelete)
	rec := doJSON(t, http.MethodPost, "/v1/products/2/delete/confirm", "",
		map[string]string{"id": "2"}, h.ConfirmDelete)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409; body %s", rec.Code, rec.Body)
	}
	if products.Len() != 2 {
		t.Fatalf("collection size = %d, want 2", products.Len())
	}
}

func TestProductList(t *testing.T) {
	seed := []model.Product{{ID: 1, Name: "T-Shirt", Price: "$19.99", Stock: 45, Status: model.StatusActive}}
	h, _ := newProductHandler(seed)

	rec := doJSON(t, http.MethodGet, "/v1/products", "", nil, h.List)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Items []model.Product `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 1 || body.Items[0].Name != "T-Shirt" {
		t.Fatalf("items = %+v", body.Items)
	}
}
