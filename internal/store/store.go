// Package store persists feature histories to SQLite. Snapshots are
// stored whole as JSON blobs keyed by feature; writes are last-write-wins
// and a corrupt blob is discarded rather than surfaced, so a damaged
// database degrades to empty history instead of a startup failure.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"mindease/internal/logging"
	"mindease/internal/types"
)

// Snapshot keys. One row per feature.
const (
	keyMoodHistory    = "moodHistory"
	keyJournalEntries = "journalHistory"
)

// Store wraps the SQLite database holding feature snapshots.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// New opens (or creates) the database at path.
func New(path string) (*Store, error) {
	timer := logging.StartTimer(logging.CategoryStore, "store.New")
	defer timer.Stop()

	logging.Store("Opening store at %s", path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite journal_mode=WAL: %v", err)
	}
	// synchronous=NORMAL is safe under WAL and much faster than FULL
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite synchronous=NORMAL: %v", err)
	}

	s := &Store{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logging.StoreDebug("Store ready")
	return s, nil
}

func (s *Store) initialize() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// putJSON serializes v and upserts it under key.
func (s *Store) putJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, data, time.Now().Unix())
	if err != nil {
		logging.StoreError("put %s failed: %v", key, err)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	logging.StoreDebug("put %s (%d bytes)", key, len(data))
	return nil
}

// getJSON loads the blob under key into v. A missing row or a corrupt
// blob leaves v untouched and returns false.
func (s *Store) getJSON(key string, v interface{}) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data []byte
	err := s.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		logging.StoreError("get %s failed: %v", key, err)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logging.StoreError("get %s: corrupt snapshot discarded: %v", key, err)
		return false
	}
	return true
}

// SaveMoodEntries persists the mood log, newest first.
func (s *Store) SaveMoodEntries(entries []types.MoodEntry) error {
	return s.putJSON(keyMoodHistory, entries)
}

// LoadMoodEntries returns the persisted mood log, or nil when absent
// or unreadable.
func (s *Store) LoadMoodEntries() []types.MoodEntry {
	var entries []types.MoodEntry
	if !s.getJSON(keyMoodHistory, &entries) {
		return nil
	}
	return entries
}

// SaveJournalEntries persists the journal, newest first.
func (s *Store) SaveJournalEntries(entries []types.JournalEntry) error {
	return s.putJSON(keyJournalEntries, entries)
}

// LoadJournalEntries returns the persisted journal, or nil when absent
// or unreadable.
func (s *Store) LoadJournalEntries() []types.JournalEntry {
	var entries []types.JournalEntry
	if !s.getJSON(keyJournalEntries, &entries) {
		return nil
	}
	return entries
}
