package store

import "sync"

// GeneralSettings mirrors the panel's general settings tab. DarkMode is
// plain state here; components read it from this store instead of a
// process-wide theme singleton.
type GeneralSettings struct {
	SiteName            string `json:"site_name"`
	ItemsPerPage        int    `json:"items_per_page"`
	EnableNotifications bool   `json:"enable_notifications"`
	DarkMode            bool   `json:"dark_mode"`
}

// APISettings configures the backend transport the stub client stands in
// for: base URL, key and request timeout in seconds.
type APISettings struct {
	BaseURL    string `json:"base_url"`
	Key        string `json:"key"`
	TimeoutSec int    `json:"timeout_sec"`
}

// SettingsStore holds the runtime-mutable application settings. It is
// created once in main and handed to whatever needs it, so there is no
// hidden global to reach for.
type SettingsStore struct {
	mu      sync.RWMutex
	general GeneralSettings
	api     APISettings
}

func NewSettingsStore(general GeneralSettings, api APISettings) *SettingsStore {
	return &SettingsStore{general: general, api: api}
}

// General returns the current general settings.
func (s *SettingsStore) General() GeneralSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.general
}

// SetGeneral replaces the general settings wholesale.
func (s *SettingsStore) SetGeneral(g GeneralSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.general = g
}

// API returns the current API settings.
func (s *SettingsStore) API() APISettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.api
}

// SetAPI replaces the API settings wholesale.
func (s *SettingsStore) SetAPI(a APISettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.api = a
}

// DarkMode reports the current theme flag.
func (s *SettingsStore) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.general.DarkMode
}
