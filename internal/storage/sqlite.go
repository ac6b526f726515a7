package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// dbFileName is the SQLite database file created under the data directory.
const dbFileName = "stockroom.db"

// schemaSQL holds the key-value table DDL.
const schemaSQL = `CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

// SQLite is a Store backed by a single key-value table in a SQLite
// database. The quota models the byte budget of the underlying key-value
// backend: when the sum of stored values would exceed it, SetItem trims
// the append-only logs and retries once.
type SQLite struct {
	mu    sync.Mutex
	db    *sql.DB
	quota int64
	log   *zap.SugaredLogger
}

// OpenSQLite opens (creating if needed) the database under dataDir and
// ensures the schema exists. A zero quota means unlimited.
func OpenSQLite(dataDir string, quotaBytes int64, log *zap.SugaredLogger) (*SQLite, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLite{db: db, quota: quotaBytes, log: log}, nil
}

// SetItem implements Store.
func (s *SQLite) SetItem(key string, value any) bool {
	if strings.TrimSpace(key) == "" {
		s.log.Warnw("invalid storage key", "key", key)
		return false
	}
	if value == nil {
		s.log.Warnw("refusing to store nil value", "key", key)
		return false
	}

	serialized, err := json.Marshal(value)
	if err != nil {
		s.log.Errorw("serialize value", "key", key, "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		s.log.Warnw("storage backend is closed", "key", key)
		return false
	}

	if s.overQuotaLocked(key, int64(len(serialized))) {
		s.log.Warnw("storage quota exceeded, trimming logs", "key", key)
		trimLogsForSpace(s)
		if s.overQuotaLocked(key, int64(len(serialized))) {
			s.log.Errorw("storage quota still exceeded after cleanup", "key", key)
			return false
		}
	}

	if !s.setRaw(key, string(serialized)) {
		return false
	}
	return true
}

// GetItem implements Store.
func (s *SQLite) GetItem(key string, out any) bool {
	if strings.TrimSpace(key) == "" {
		s.log.Warnw("invalid storage key", "key", key)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		s.log.Warnw("storage backend is closed", "key", key)
		return false
	}

	raw, ok := s.getRaw(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// Corrupted entry: repair by deleting it.
		s.log.Warnw("corrupted value, removing", "key", key, "error", err)
		if _, derr := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); derr != nil {
			s.log.Errorw("remove corrupted value", "key", key, "error", derr)
		}
		return false
	}
	return true
}

// RemoveItem implements Store.
func (s *SQLite) RemoveItem(key string) bool {
	if strings.TrimSpace(key) == "" {
		s.log.Warnw("invalid storage key", "key", key)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return false
	}
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.log.Errorw("remove value", "key", key, "error", err)
		return false
	}
	return true
}

// Clear implements Store. The locale-preference keys survive.
func (s *SQLite) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return false
	}

	placeholders := make([]string, 0, len(preservedKeys))
	args := make([]any, 0, len(preservedKeys))
	for key := range preservedKeys {
		placeholders = append(placeholders, "?")
		args = append(args, key)
	}
	query := fmt.Sprintf(`DELETE FROM kv WHERE key NOT IN (%s)`,
		strings.Join(placeholders, ", "))
	if _, err := s.db.Exec(query, args...); err != nil {
		s.log.Errorw("clear storage", "error", err)
		return false
	}
	return true
}

// Close releases the database handle. Idempotent.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// overQuotaLocked reports whether writing size bytes under key would push
// total stored bytes past the quota. Caller must hold s.mu.
func (s *SQLite) overQuotaLocked(key string, size int64) bool {
	if s.quota <= 0 {
		return false
	}
	var used, existing int64
	row := s.db.QueryRow(`SELECT COALESCE(SUM(LENGTH(value)), 0) FROM kv`)
	if err := row.Scan(&used); err != nil {
		s.log.Errorw("query storage usage", "error", err)
		return false
	}
	row = s.db.QueryRow(`SELECT COALESCE(LENGTH(value), 0) FROM kv WHERE key = ?`, key)
	if err := row.Scan(&existing); err != nil && err != sql.ErrNoRows {
		s.log.Errorw("query existing value size", "key", key, "error", err)
		return false
	}
	return used-existing+size > s.quota
}

// getRaw reads the serialized value under key. Caller must hold s.mu.
func (s *SQLite) getRaw(key string) (string, bool) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		s.log.Errorw("read value", "key", key, "error", err)
		return "", false
	}
	return raw, true
}

// setRaw upserts the serialized value under key. Caller must hold s.mu.
func (s *SQLite) setRaw(key, value string) bool {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		s.log.Errorw("write value", "key", key, "error", err)
		return false
	}
	return true
}
