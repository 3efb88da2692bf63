// Package session keeps per-browser UI state (last search and scroll
// position) behind a pluggable Store.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dexhub/pkg/database"
	"dexhub/pkg/models"
	"dexhub/pkg/utils"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("session: not found")

type Store interface {
	Save(ctx context.Context, sessionID string, state *models.SearchState) error
	Load(ctx context.Context, sessionID string) (*models.SearchState, error)
	Delete(ctx context.Context, sessionID string) error
	List(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the store selected by cfg.Backend.
func Open(cfg utils.SessionConfig) (Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(cfg.TTL), nil
	case "sqlite":
		dbCfg := database.DefaultConfig()
		if cfg.SQLitePath != "" {
			dbCfg.Path = cfg.SQLitePath
		}
		db, err := database.Open(dbCfg)
		if err != nil {
			return nil, fmt.Errorf("session: open sqlite: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("session: migrate sqlite: %w", err)
		}
		return NewSQLiteStore(db, cfg.TTL), nil
	case "redis":
		return NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, WithTTL(cfg.TTL)), nil
	default:
		return nil, fmt.Errorf("session: unknown backend %q", cfg.Backend)
	}
}

func expiry(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}
