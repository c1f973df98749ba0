package prefs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Theme is the persisted display mode.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Store is a small sqlite-backed key-value store for user preferences. The
// theme choice is the only thing that survives restarts.
type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating prefs dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening prefs db: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS prefs (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing prefs schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Theme returns the persisted theme, defaulting to dark when nothing was
// stored or the stored value is unknown.
func (s *Store) Theme() Theme {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = 'theme'").Scan(&value)
	if err != nil {
		return ThemeDark
	}
	if Theme(value) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

func (s *Store) SetTheme(t Theme) error {
	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value) VALUES ('theme', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, string(t))
	return err
}
