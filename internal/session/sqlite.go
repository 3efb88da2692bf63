package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dexhub/pkg/models"
)

// SQLiteStore keeps session state in the session_state table created by
// database.Migrate.
type SQLiteStore struct {
	DB  *sql.DB
	TTL time.Duration
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB, ttl time.Duration) *SQLiteStore {
	return &SQLiteStore{DB: db, TTL: ttl, now: time.Now}
}

func (s *SQLiteStore) Save(ctx context.Context, sessionID string, state *models.SearchState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}

	var expiresAt sql.NullInt64
	if exp := expiry(s.now(), s.TTL); !exp.IsZero() {
		expiresAt = sql.NullInt64{Int64: exp.UnixNano(), Valid: true}
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO session_state (session_id, state, updated_at, expires_at)
		VALUES (?, ?, CURRENT_TIMESTAMP, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			state = excluded.state,
			updated_at = CURRENT_TIMESTAMP,
			expires_at = excluded.expires_at
	`, sessionID, string(data), expiresAt)
	if err != nil {
		return fmt.Errorf("upsert session state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, sessionID string) (*models.SearchState, error) {
	var (
		data      string
		expiresAt sql.NullInt64
	)
	err := s.DB.QueryRowContext(ctx, `
		SELECT state, expires_at FROM session_state WHERE session_id = ?
	`, sessionID).Scan(&data, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan session state: %w", err)
	}
	if expiresAt.Valid && expiresAt.Int64 <= s.now().UnixNano() {
		_ = s.Delete(ctx, sessionID)
		return nil, ErrNotFound
	}

	var st models.SearchState
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, fmt.Errorf("unmarshal session state: %w", err)
	}
	return &st, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM session_state WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete session state: %w", err)
	}
	return nil
}

// List prunes expired rows, then returns the live session ids.
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	if _, err := s.DB.ExecContext(ctx, `
		DELETE FROM session_state WHERE expires_at IS NOT NULL AND expires_at <= ?
	`, s.now().UnixNano()); err != nil {
		return nil, fmt.Errorf("prune sessions: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT session_id FROM session_state ORDER BY session_id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list scan: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.DB.Close()
}
