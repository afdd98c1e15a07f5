// Package sqlite persists idempotency records. Each dedupe key maps to
// the id of the remote document its create produced; records are written
// once and survive across process invocations.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"inkwell/internal/ports"
)

// DedupeStore is the SQLite-backed dedupe-key store.
type DedupeStore struct {
	db *sql.DB
}

var _ ports.DedupeStore = (*DedupeStore)(nil)

// Open opens (and if needed creates) the store at path.
func Open(path string) (*DedupeStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open dedupe store: %w", err)
	}

	// Pragmas and schema in one batch.
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS dedupe_keys (
			key         TEXT PRIMARY KEY,
			document_id TEXT NOT NULL,
			created_at  INTEGER NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("setup dedupe store: %w", err)
	}

	return &DedupeStore{db: db}, nil
}

// Lookup returns the document id recorded for key, if any.
func (s *DedupeStore) Lookup(key string) (string, bool, error) {
	var id string
	err := s.db.QueryRow("SELECT document_id FROM dedupe_keys WHERE key = ?", key).Scan(&id)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup dedupe key: %w", err)
	}
	return id, true, nil
}

// Record stores key → documentID. An existing record is left untouched:
// the first create wins and later writes are no-ops.
func (s *DedupeStore) Record(key, documentID string) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO dedupe_keys (key, document_id, created_at) VALUES (?, ?, ?)",
		key, documentID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record dedupe key: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *DedupeStore) Close() error {
	return s.db.Close()
}
