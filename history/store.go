// SPDX-License-Identifier: MIT

package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound is returned by Get for an unknown run ID.
var ErrNotFound = errors.New("history: entry not found")

// Entry is one recorded solve.
type Entry struct {
	ID        uuid.UUID
	Name      string
	Input     [][]float64
	Reduced   [][]float64
	Solvable  bool
	CreatedAt time.Time
}

// Store is a SQLite-backed history log.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path and applies the schema.
// Safe to call on an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: connect: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("history: %q: %w", p, err)
		}
	}

	return nil
}

// Close closes the database. A nil or closed Store is fine.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// Record appends e. A zero ID is replaced by a fresh UUIDv7 and a zero
// CreatedAt by the current time; the stored entry is returned.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return Entry{}, fmt.Errorf("history: new id: %w", err)
		}
		e.ID = id
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()

	input, err := json.Marshal(e.Input)
	if err != nil {
		return Entry{}, fmt.Errorf("history: encode input: %w", err)
	}
	reduced, err := json.Marshal(e.Reduced)
	if err != nil {
		return Entry{}, fmt.Errorf("history: encode reduced: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO solves (id, name, input, reduced, solvable, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID.String(), e.Name, string(input), string(reduced), e.Solvable, e.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Entry{}, fmt.Errorf("history: insert %s: %w", e.ID, err)
	}

	return e, nil
}

// List returns up to limit entries, newest first. limit <= 0 means all.
// Returns an empty slice (not nil) when the log is empty.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, input, reduced, solvable, created_at
		FROM solves
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate: %w", err)
	}

	return entries, nil
}

// Get returns the entry with the given run ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, input, reduced, solvable, created_at
		FROM solves
		WHERE id = ?
	`, id.String())
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("history: %s: %w", id, ErrNotFound)
	}

	return e, err
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e                         Entry
		id, input, reduced, stamp string
	)
	if err := sc.Scan(&id, &e.Name, &input, &reduced, &e.Solvable, &stamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("history: scan: %w", err)
	}

	var err error
	if e.ID, err = uuid.Parse(id); err != nil {
		return Entry{}, fmt.Errorf("history: bad id %q: %w", id, err)
	}
	if err = json.Unmarshal([]byte(input), &e.Input); err != nil {
		return Entry{}, fmt.Errorf("history: decode input of %s: %w", id, err)
	}
	if err = json.Unmarshal([]byte(reduced), &e.Reduced); err != nil {
		return Entry{}, fmt.Errorf("history: decode reduced of %s: %w", id, err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, stamp); err != nil {
		return Entry{}, fmt.Errorf("history: bad timestamp of %s: %w", id, err)
	}

	return e, nil
}
