// Package storage persists the weekly task board in a local SQLite database.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/lstephensFederation/lolTasks/internal/week"
)

// StoreError wraps a load or save failure with the operation and path that
// produced it.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store owns the database connection.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates the containing directory if needed, opens the database and
// ensures the schema exists.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, &StoreError{Op: "open", Path: dbPath, Err: err}
	}
	dsn := sqliteDSN(dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &StoreError{Op: "open", Path: dbPath, Err: err}
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: dbPath}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, &StoreError{Op: "migrate", Path: dbPath, Err: err}
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// modernc.org/sqlite uses driver name "sqlite" and prefers a file: DSN.
// mode=rwc creates the database file if it doesn't exist.
func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS weeks (
	key TEXT PRIMARY KEY,
	title TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	week_key TEXT NOT NULL,
	position INTEGER NOT NULL,
	text TEXT NOT NULL,
	state TEXT NOT NULL,
	PRIMARY KEY (week_key, position)
);`
	_, err := s.db.Exec(ddl)
	return err
}

// Load reads the whole board. A fresh database yields an empty snapshot,
// not an error.
func (s *Store) Load() (Snapshot, error) {
	snap := Snapshot{}

	rows, err := s.db.Query(`SELECT key, title FROM weeks;`)
	if err != nil {
		return nil, &StoreError{Op: "load", Path: s.path, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var key, title string
		if err := rows.Scan(&key, &title); err != nil {
			return nil, &StoreError{Op: "load", Path: s.path, Err: err}
		}
		snap[week.Key(key)] = &Week{Title: title}
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "load", Path: s.path, Err: err}
	}

	taskRows, err := s.db.Query(`SELECT week_key, text, state FROM tasks ORDER BY week_key, position;`)
	if err != nil {
		return nil, &StoreError{Op: "load", Path: s.path, Err: err}
	}
	defer taskRows.Close()
	for taskRows.Next() {
		var key, text, state string
		if err := taskRows.Scan(&key, &text, &state); err != nil {
			return nil, &StoreError{Op: "load", Path: s.path, Err: err}
		}
		w, ok := snap[week.Key(key)]
		if !ok {
			// Orphaned task row; adopt it under a default week.
			w = NewWeek()
			snap[week.Key(key)] = w
		}
		w.Tasks = append(w.Tasks, Task{Text: text, State: ParseState(state)})
	}
	if err := taskRows.Err(); err != nil {
		return nil, &StoreError{Op: "load", Path: s.path, Err: err}
	}
	return snap, nil
}

// Save replaces the stored board with the snapshot in one transaction, so a
// failed save leaves the previous on-disk state intact.
func (s *Store) Save(snap Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &StoreError{Op: "save", Path: s.path, Err: err}
	}
	if err := saveTx(tx, snap); err != nil {
		tx.Rollback()
		return &StoreError{Op: "save", Path: s.path, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &StoreError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

func saveTx(tx *sql.Tx, snap Snapshot) error {
	if _, err := tx.Exec(`DELETE FROM tasks;`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM weeks;`); err != nil {
		return err
	}
	for key, w := range snap {
		if _, err := tx.Exec(`INSERT INTO weeks (key, title) VALUES (?, ?);`, string(key), w.Title); err != nil {
			return err
		}
		for i, t := range w.Tasks {
			if _, err := tx.Exec(`INSERT INTO tasks (week_key, position, text, state) VALUES (?, ?, ?, ?);`,
				string(key), i, t.Text, t.State.Label()); err != nil {
				return err
			}
		}
	}
	return nil
}
