package store

import "testing"

func TestSettingsStore(t *testing.T) {
	s := NewSettingsStore(
		GeneralSettings{SiteName: "Catalog Admin", ItemsPerPage: 10},
		APISettings{BaseURL: "http://localhost:8000/api/v1/", TimeoutSec: 30},
	)

	if s.DarkMode() {
		t.Error("dark mode should start off")
	}

	g := s.General()
	g.DarkMode = true
	g.ItemsPerPage = 25
	s.SetGeneral(g)

	if !s.DarkMode() {
		t.Error("dark mode not visible after update")
	}
	if got := s.General().ItemsPerPage; got != 25 {
		t.Errorf("items per page = %d, want 25", got)
	}
	// The API tab is untouched by a general update.
	if got := s.API().TimeoutSec; got != 30 {
		t.Errorf("timeout = %d, want 30", got)
	}
}
