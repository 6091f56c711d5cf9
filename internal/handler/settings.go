package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/adilbekov/catalog-admin/internal/client"
	"github.com/adilbekov/catalog-admin/internal/store"
)

// SettingsHandler exposes the general and API settings tabs. The settings
// store is the one created in main; dark mode travels with it instead of
// living in a process-wide theme variable.
type SettingsHandler struct {
	Settings *store.SettingsStore
	Backend  client.Transport
	validate *validator.Validate
}

func NewSettingsHandler(settings *store.SettingsStore, backend client.Transport) *SettingsHandler {
	return &SettingsHandler{Settings: settings, Backend: backend, validate: validator.New()}
}

type generalSettingsReq struct {
	SiteName            string `json:"site_name" validate:"required"`
	ItemsPerPage        int    `json:"items_per_page" validate:"gte=1,lte=500"`
	EnableNotifications bool   `json:"enable_notifications"`
	DarkMode            bool   `json:"dark_mode"`
}

type apiSettingsReq struct {
	BaseURL    string `json:"base_url" validate:"required,url"`
	Key        string `json:"key"`
	TimeoutSec int    `json:"timeout_sec" validate:"gte=1,lte=600"`
}

// GetGeneral handles GET /v1/settings/general.
func (h *SettingsHandler) GetGeneral(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Settings.General())
}

// UpdateGeneral handles PUT /v1/settings/general.
func (h *SettingsHandler) UpdateGeneral(c echo.Context) error {
	var req generalSettingsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid settings"})
	}
	h.Settings.SetGeneral(store.GeneralSettings{
		SiteName:            req.SiteName,
		ItemsPerPage:        req.ItemsPerPage,
		EnableNotifications: req.EnableNotifications,
		DarkMode:            req.DarkMode,
	})
	return c.JSON(http.StatusOK, h.Settings.General())
}

// GetAPI handles GET /v1/settings/api.
func (h *SettingsHandler) GetAPI(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Settings.API())
}

// UpdateAPI handles PUT /v1/settings/api.
func (h *SettingsHandler) UpdateAPI(c echo.Context) error {
	var req apiSettingsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid settings"})
	}
	h.Settings.SetAPI(store.APISettings{
		BaseURL:    req.BaseURL,
		Key:        req.Key,
		TimeoutSec: req.TimeoutSec,
	})
	return c.JSON(http.StatusOK, h.Settings.API())
}

// TestConnection handles POST /v1/settings/api/test by pinging the
// backend through the configured transport. With the stub client wired
// in this always succeeds and logs the call.
func (h *SettingsHandler) TestConnection(c echo.Context) error {
	api := h.Settings.API()
	ctx, cancel := context.WithTimeout(c.Request().Context(), time.Duration(api.TimeoutSec)*time.Second)
	defer cancel()

	resp, err := h.Backend.Get(ctx, "status")
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "connection test failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "response": resp})
}
