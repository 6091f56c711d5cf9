package handler

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/adilbekov/catalog-admin/internal/config"
	"github.com/adilbekov/catalog-admin/internal/model"
	"github.com/adilbekov/catalog-admin/internal/store"
	"github.com/adilbekov/catalog-admin/internal/utils"
)

// AuthHandler signs admins in against the user collection. Only accounts
// with a stored credential and Active status may authenticate.
type AuthHandler struct {
	Cfg      config.Config
	Users    *store.UserStore
	validate *validator.Validate
}

func NewAuthHandler(cfg config.Config, users *store.UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, validate: validator.New()}
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userPart struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login verifies the credentials and returns a short-lived access token.
// A successful sign-in also refreshes the account's last-login label.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	u, ok := h.Users.GetByEmail(req.Email)
	if !ok || u.PasswordHash == "" || !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if u.Status != model.UserStatusActive {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "account is not active"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, u.Name, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	u.LastLogin = "Just now"
	h.Users.Update(u.ID, u)

	return c.JSON(http.StatusOK, echo.Map{
		"user":   userPart{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
		"access": access,
	})
}

// Me echoes the identity claims of the presented token.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": c.Get("user_id"),
		"role":    c.Get("role"),
		"name":    c.Get("user_name"),
	})
}
