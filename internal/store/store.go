// Package store persists visitor preferences in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"
)

// ErrClosed is returned after Close.
var ErrClosed = errors.New("store closed")

// Store is a per-owner key/value table. Owners are hashed visitor ids, never
// raw addresses.
type Store struct {
	db     *sql.DB
	logger *log.Logger
	now    func() time.Time
	closed atomic.Bool
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// one connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)

	s := &Store{db: db, logger: logger, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	createPreferences := `
	CREATE TABLE IF NOT EXISTS preferences (
		owner TEXT NOT NULL,      -- hashed visitor id
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL, -- unix seconds
		PRIMARY KEY (owner, key)
	)`
	if _, err := s.db.ExecContext(ctx, createPreferences); err != nil {
		return fmt.Errorf("create preferences table: %w", err)
	}
	s.logger.Println("Preference store initialized")
	return nil
}

// Get returns the value stored for owner and key.
func (s *Store) Get(ctx context.Context, owner, key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, fmt.Errorf("get preference: %w", ErrClosed)
	}
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE owner = ? AND key = ?`,
		owner, key,
	).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("get preference: %w", err)
	}
	return value, true, nil
}

// Set stores value for owner and key, replacing any previous value.
func (s *Store) Set(ctx context.Context, owner, key, value string) error {
	if s.closed.Load() {
		return fmt.Errorf("set preference: %w", ErrClosed)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (owner, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (owner, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, owner, key, value, s.now().Unix())
	if err != nil {
		return fmt.Errorf("set preference: %w", err)
	}
	return nil
}

// Prune deletes preferences not touched within maxAge and returns how many
// rows were removed.
func (s *Store) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	if s.closed.Load() {
		return 0, fmt.Errorf("prune preferences: %w", ErrClosed)
	}
	cutoff := s.now().Add(-maxAge).Unix()
	result, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE updated_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune preferences: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows > 0 {
		s.logger.Printf("Privacy cleanup: Removed %d preferences older than %s", rows, maxAge)
	}
	return rows, nil
}

// CountValues returns how many owners hold each value of key.
func (s *Store) CountValues(ctx context.Context, key string) (map[string]int64, error) {
	if s.closed.Load() {
		return nil, fmt.Errorf("count preferences: %w", ErrClosed)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT value, COUNT(*) FROM preferences WHERE key = ? GROUP BY value`, key)
	if err != nil {
		return nil, fmt.Errorf("count preferences: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var value string
		var n int64
		if err := rows.Scan(&value, &n); err != nil {
			return nil, fmt.Errorf("scan preference count: %w", err)
		}
		counts[value] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count preferences: %w", err)
	}
	return counts, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}
