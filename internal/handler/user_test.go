package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/adilbekov/catalog-admin/internal/editor"
	"github.com/adilbekov/catalog-admin/internal/model"
	"github.com/adilbekov/catalog-admin/internal/queue"
	"github.com/adilbekov/catalog-admin/internal/store"
)

func newUserHandler(seed []model.User) (*UserHandler, *store.UserStore) {
	users := store.NewUserStore()
	users.Replace(seed)
	ed := editor.NewUserEditor(users, bcrypt.MinCost)
	return NewUserHandler(ed, users, queue.NopPublisher{}), users
}

func TestUserCreate(t *testing.T) {
	h, users := newUserHandler(nil)

	rec := doJSON(t, http.MethodPost, "/v1/users",
		`{"name":"New User","email":"new@example.com","password":"secret","confirm_password":"secret"}`,
		nil, h.Create)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body)
	}
	var u model.User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Role and status were not sent; the blank-draft defaults apply.
	if u.Role != model.RoleUser || u.Status != model.UserStatusActive {
		t.Fatalf("created = %+v, want role User, status Active", u)
	}
	if users.Len() != 1 {
		t.Fatalf("collection size = %d, want 1", users.Len())
	}
}

func TestUserPartialUpdateKeepsRoleAndStatus(t *testing.T) {
	seed := []model.User{{
		ID: 7, Name: "Jane", Email: "jane@example.com",
		Role: model.RoleManager, Status: model.UserStatusActive,
		LastLogin: "1 day ago",
	}}
	h, users := newUserHandler(seed)

	// Only name and email in the payload: everything else must survive.
	rec := doJSON(t, http.MethodPut, "/v1/users/7",
		`{"name":"Jane S.","email":"jane@example.com"}`,
		map[string]string{"id": "7"}, h.Update)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
	stored, _ := users.Get(7)
	if stored.Name != "Jane S." {
		t.Errorf("name = %q, want %q", stored.Name, "Jane S.")
	}
	if stored.Role != model.RoleManager || stored.Status != model.UserStatusActive {
		t.Errorf("partial update blanked role/status: %+v", stored)
	}
	if stored.LastLogin != "1 day ago" {
		t.Errorf("last login = %q, want preserved %q", stored.LastLogin, "1 day ago")
	}
}

func TestUserUpdateRejectsExplicitBlankRole(t *testing.T) {
	seed := []model.User{{
		ID: 7, Name: "Jane", Email: "jane@example.com",
		Role: model.RoleManager, Status: model.UserStatusActive,
	}}
	h, users := newUserHandler(seed)

	rec := doJSON(t, http.MethodPut, "/v1/users/7",
		`{"name":"Jane","role":""}`,
		map[string]string{"id": "7"}, h.Update)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body)
	}
	stored, _ := users.Get(7)
	if stored.Role != model.RoleManager {
		t.Fatalf("role = %q, want unchanged Manager", stored.Role)
	}
}
