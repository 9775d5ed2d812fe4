// Package cache provides a SQLite-backed key-value store with TTL
// expiry, used to avoid re-fetching provider responses within a run
// window.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists JSON-encoded values with an expiry timestamp.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.Mutex
	now func() time.Time
}

// Open opens (or creates) the cache database and runs migrations.
func Open(dbPath string, ttl time.Duration) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db, ttl: ttl, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] cache opened: %s (ttl %s)", dbPath, ttl)
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			expires_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_kv_expires ON kv(expires_at)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// Get loads the value for key into v. It returns false on a miss or an
// expired entry.
func (s *Store) Get(key string, v any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var blob []byte
	var expiresAt int64
	err := s.db.QueryRow("SELECT value, expires_at FROM kv WHERE key = ?", key).
		Scan(&blob, &expiresAt)
	if err != nil {
		return false
	}
	if s.now().Unix() >= expiresAt {
		return false
	}
	if err := json.Unmarshal(blob, v); err != nil {
		log.Printf("[WARN] cache decode for %q: %v", key, err)
		return false
	}
	return true
}

// Set stores v under key with the store's TTL.
func (s *Store) Set(key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(
		"INSERT INTO kv (key, value, expires_at) VALUES (?, ?, ?) "+
			"ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at",
		key, blob, s.now().Add(s.ttl).Unix())
	if err != nil {
		return fmt.Errorf("cache write: %w", err)
	}
	return nil
}

// Purge deletes expired entries.
func (s *Store) Purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM kv WHERE expires_at <= ?", s.now().Unix())
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
