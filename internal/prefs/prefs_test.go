package prefs

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestThemeDefaultsToDark(t *testing.T) {
	s := openTestStore(t)
	if got := s.Theme(); got != ThemeDark {
		t.Errorf("default theme = %q, want dark", got)
	}
}

func TestSetThemeRoundTrip(t *testing.T) {
	s := openTestStore(t)
	if err := s.SetTheme(ThemeLight); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if got := s.Theme(); got != ThemeLight {
		t.Errorf("theme = %q, want light", got)
	}

	if err := s.SetTheme(ThemeDark); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if got := s.Theme(); got != ThemeDark {
		t.Errorf("theme = %q, want dark", got)
	}
}

func TestThemeSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "prefs.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	if err := s.SetTheme(ThemeLight); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	s.Close()

	s2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer s2.Close()
	if got := s2.Theme(); got != ThemeLight {
		t.Errorf("theme after reopen = %q, want light", got)
	}
}

func TestThemeIgnoresUnknownValue(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.db.Exec(`INSERT INTO prefs (key, value) VALUES ('theme', 'solarized')`); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	if got := s.Theme(); got != ThemeDark {
		t.Errorf("unknown stored theme = %q, want dark", got)
	}
}
