package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tmalloy/punchlist/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStorage keeps all blobs in a single kv table. The schema is
// deliberately a key-value surface: callers get the same contract as
// the file backend, one durable blob per key.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the
// kv table exists. Pass ":memory:" for an ephemeral store in tests.
func OpenSQLite(path string) (*SQLiteStorage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &domain.StorageError{Op: "open", Err: fmt.Errorf("database path is required")}
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &domain.StorageError{Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &domain.StorageError{Op: "open", Err: err}
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, &domain.StorageError{Op: "open", Err: err}
	}
	return &SQLiteStorage{db: db}, nil
}

// Get reads the blob for key. No row maps to domain.ErrNotFound.
func (s *SQLiteStorage) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.StorageError{Op: "read", Key: key, Err: domain.ErrNotFound}
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "read", Key: key, Err: err}
	}
	return value, nil
}

// Set upserts the blob for key.
func (s *SQLiteStorage) Set(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return &domain.StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// Close closes the database handle.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return &domain.StorageError{Op: "close", Err: err}
	}
	return nil
}
