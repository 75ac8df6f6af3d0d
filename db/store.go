// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/countdown/countdown"
)

// Database types, matching cliparse
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

var (
	ErrTargetNotFound = errors.New("target not found")
	ErrUnknownType    = errors.New("unknown database type")
)

// StoredTarget is a countdown target row
type StoredTarget struct {
	ID       int64  `json:"id"`
	Position int64  `json:"position"`
	Title    string `json:"title"`
	Target   string `json:"target"`
}

// Store reads and writes configured countdown targets
type Store struct {
	db     *sql.DB
	dbType string
}

// New wraps an open connection
func New(conn *sql.DB, dbType string) (*Store, error) {
	if dbType != TypeSQLite && dbType != TypePostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, dbType)
	}
	return &Store{db: conn, dbType: dbType}, nil
}

// Open connects to the database, verifies the connection and creates the schema
func Open(ctx context.Context, dbType, url string) (*Store, error) {
	if dbType != TypeSQLite && dbType != TypePostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store, err := New(conn, dbType)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := store.CreateSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying connection
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSchema creates the target table.
// Safe to call multiple times - uses IF NOT EXISTS.
func (s *Store) CreateSchema(ctx context.Context) error {
	schema := sqliteSchema
	if s.dbType == TypePostgres {
		schema = postgresSchema
	}

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// LoadTargets returns stored targets in display-config order
func (s *Store) LoadTargets(ctx context.Context) ([]countdown.Target, error) {
	stored, err := s.ListTargets(ctx)
	if err != nil {
		return nil, err
	}

	targets := make([]countdown.Target, len(stored))
	for i, st := range stored {
		targets[i] = countdown.Target{Title: st.Title, Raw: st.Target}
	}
	return targets, nil
}

// ListTargets returns stored target rows ordered by position, then id
func (s *Store) ListTargets(ctx context.Context) ([]StoredTarget, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, position, title, target
		FROM countdown_target
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query targets: %w", err)
	}
	defer rows.Close()

	targets := []StoredTarget{}
	for rows.Next() {
		var st StoredTarget
		if err := rows.Scan(&st.ID, &st.Position, &st.Title, &st.Target); err != nil {
			return nil, fmt.Errorf("failed to scan target: %w", err)
		}
		targets = append(targets, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read targets: %w", err)
	}
	return targets, nil
}

// InsertTarget appends a target after the current last position and returns its id
func (s *Store) InsertTarget(ctx context.Context, title, target string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, s.rebind(`
		INSERT INTO countdown_target (position, title, target)
		VALUES ((SELECT COALESCE(MAX(position), 0) + 1 FROM countdown_target), ?, ?)
		RETURNING id
	`), title, target).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert target: %w", err)
	}
	return id, nil
}

// DeleteTarget removes the target with the given id
func (s *Store) DeleteTarget(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM countdown_target WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete target: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete target: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrTargetNotFound, id)
	}
	return nil
}

// rebind rewrites ? placeholders to $n for postgres
func (s *Store) rebind(query string) string {
	if s.dbType != TypePostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS countdown_target (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    position INTEGER NOT NULL DEFAULT 0,
    title TEXT NOT NULL DEFAULT '',
    target TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_countdown_target_position ON countdown_target(position);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS countdown_target (
    id BIGSERIAL PRIMARY KEY,
    position BIGINT NOT NULL DEFAULT 0,
    title TEXT NOT NULL DEFAULT '',
    target TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_countdown_target_position ON countdown_target(position);
`
