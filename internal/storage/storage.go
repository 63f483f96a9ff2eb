package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const dbFileName = "notes.sqlite"

// Fixed keys of the persisted state layout. The two collections are serialized
// JSON arrays; the preference keys hold single string values.
const (
	KeyNotes      = "notes"
	KeyGroups     = "groups"
	KeyTheme      = "theme"
	KeyColorTheme = "colorTheme"
	KeyLanguage   = "language"
	KeyUIState    = "uiState"
)

// Store is the durable key-value store backing the app, scoped to one store
// directory the way browser local storage is scoped to an origin. Values are
// opaque strings; writes are last-write-wins per key.
type Store struct {
	Dir string
}

// DiscoverDir walks up from start looking for a ".notes" directory.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".notes")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultDir resolves the store directory: NOTES_DIR env override, then
// walk-up discovery from the working directory, then the per-user config dir.
func DefaultDir() (string, error) {
	if v := os.Getenv("NOTES_DIR"); v != "" {
		return v, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "notes"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) dbPath() string {
	return filepath.Join(s.Dir, dbFileName)
}

// LogPath is where the TUI routes its logger (stderr is the UI surface).
func (s Store) LogPath() string {
	return filepath.Join(s.Dir, "notes.log")
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.dbPath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when a CLI runs beside the TUI.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL,
		updated_at_unixms INTEGER NOT NULL
	);`)
	return err
}

// Get returns the value under key, reporting absence with ok=false.
func (s Store) Get(ctx context.Context, key string) (string, bool, error) {
	db, err := s.open(ctx)
	if err != nil {
		return "", false, err
	}
	defer db.Close()

	var v string
	err = db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set stores value under key, replacing any previous value.
func (s Store) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

// SetMany stores several keys in one transaction so that multi-collection
// writes (e.g. a group-deletion cascade touching both notes and groups) land
// together.
func (s Store) SetMany(ctx context.Context, kvs map[string]string) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for k, v := range kvs {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO kv(k, v, updated_at_unixms) VALUES(?, ?, ?)`,
			k, v, time.Now().UTC().UnixMilli()); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete removes a key. Missing keys are not an error.
func (s Store) Delete(ctx context.Context, key string) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `DELETE FROM kv WHERE k = ?`, key)
	return err
}
