// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/bookfinder/pkg/types"
)

const (
	dbFile = "bookfinder.db"

	// historyKey is the fixed key the entry list is stored under.
	historyKey = "recent_searches"
)

// SQLiteStore persists the recent-search list as a JSON array in a
// key-value table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the history database at DataDir/bookfinder.db
// and creates the schema if it does not exist.
func OpenSQLite(cfg types.HistoryConfig) (*SQLiteStore, error) {
	dir := cfg.DataDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save writes the full entry list under the fixed key.
func (s *SQLiteStore) Save(entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling entries: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		historyKey, string(data))
	if err != nil {
		return fmt.Errorf("writing entries: %w", err)
	}
	return nil
}

// Load reads the entry list. A missing row is an empty history, not an error.
func (s *SQLiteStore) Load() ([]Entry, error) {
	var data string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, historyKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, fmt.Errorf("parsing entries: %w", err)
	}
	return entries, nil
}
