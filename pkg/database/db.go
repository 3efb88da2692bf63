// Package database owns the sqlite file behind the sqlite session store:
// where it lives, how it is opened, and the session_state schema applied
// by Migrate.
package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Config locates the session database file.
type Config struct {
	Path string
}

// DefaultConfig points at ~/.dexhub/sessions.db unless DEXHUB_DB_PATH is set.
func DefaultConfig() Config {
	if p := os.Getenv("DEXHUB_DB_PATH"); p != "" {
		return Config{Path: p}
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return Config{Path: filepath.Join(home, ".dexhub", "sessions.db")}
}

// DSN is the go-sqlite3 connection string for cfg. WAL and the busy timeout
// are set per connection so every pooled handle gets them.
func (c Config) DSN() string {
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "5000")
	q.Set("_foreign_keys", "on")
	return "file:" + c.Path + "?" + q.Encode()
}

// Open creates the data directory if needed and returns a pinged handle to
// the session database. Callers run Migrate before using the store.
func Open(cfg Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create session db dir: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping session db %s: %w", cfg.Path, err)
	}
	return db, nil
}
