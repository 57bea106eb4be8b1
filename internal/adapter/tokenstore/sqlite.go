package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS session_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	expires_at INTEGER NOT NULL DEFAULT 0,
	updated_at INTEGER NOT NULL
)`

// SQLite stores the token in a local SQLite database, one row per key.
type SQLite struct {
	db  *sql.DB
	key string
	now func() time.Time
}

// NewSQLite opens (creating if needed) the database at path and purges
// expired rows.
func NewSQLite(ctx context.Context, path, key string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("tokenstore: create dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("tokenstore: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("tokenstore: migrate sqlite: %w", err)
	}

	s := &SQLite{db: db, key: key, now: time.Now}
	if _, err := s.DeleteExpired(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) Load(ctx context.Context) (string, error) {
	var (
		token     string
		expiresAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM session_kv WHERE key = ?`, s.key,
	).Scan(&token, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("tokenstore: load: %w", err)
	}
	if expiresAt > 0 && s.now().Unix() >= expiresAt {
		return "", nil
	}
	return token, nil
}

func (s *SQLite) Save(ctx context.Context, token string, expiresAt time.Time) error {
	var exp int64
	if !expiresAt.IsZero() {
		exp = expiresAt.Unix()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_kv (key, value, expires_at, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at,
			updated_at = excluded.updated_at`,
		s.key, token, exp, s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("tokenstore: save: %w", err)
	}
	return nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_kv WHERE key = ?`, s.key); err != nil {
		return fmt.Errorf("tokenstore: clear: %w", err)
	}
	return nil
}

// DeleteExpired removes every expired row and returns how many were deleted.
func (s *SQLite) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM session_kv WHERE expires_at > 0 AND expires_at <= ?`, s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("tokenstore: delete expired: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLite) Close() error { return s.db.Close() }
