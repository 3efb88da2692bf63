package sync

import "time"

const (
	EventSearchUpdated = "search.update"
	EventSearchCleared = "search.delete"
	EventScrollUpdated = "scroll.update"
	EventSessionClosed = "session.delete"
)

// SessionEvent is pushed to every socket following a session after a write.
type SessionEvent struct {
	Type           string    `json:"type"`
	SessionID      string    `json:"session_id"`
	ScrollPosition *int      `json:"scroll_position,omitempty"`
	ResultCount    int       `json:"result_count,omitempty"`
	At             time.Time `json:"at"`
}
