// Package sync fans session writes out to the WebSocket clients following
// the same session.
package sync

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 2 * time.Second

type Hub struct {
	mu       sync.Mutex
	sessions map[string]map[*websocket.Conn]*follower
}

// follower serializes writes to one socket.
type follower struct {
	mu sync.Mutex
	ws *websocket.Conn
}

type Stats struct {
	Sessions  int `json:"sessions"`
	WSClients int `json:"ws_clients"`
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]map[*websocket.Conn]*follower),
	}
}

func (h *Hub) Add(sessionID string, ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.sessions[sessionID]
	if !ok {
		subs = make(map[*websocket.Conn]*follower)
		h.sessions[sessionID] = subs
	}
	subs[ws] = &follower{ws: ws}
}

func (h *Hub) Remove(sessionID string, ws *websocket.Conn) {
	h.mu.Lock()
	h.drop(sessionID, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

// drop must be called with mu held.
func (h *Hub) drop(sessionID string, ws *websocket.Conn) {
	subs, ok := h.sessions[sessionID]
	if !ok {
		return
	}
	delete(subs, ws)
	if len(subs) == 0 {
		delete(h.sessions, sessionID)
	}
}

func (h *Hub) followers(sessionID string) []*follower {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs := h.sessions[sessionID]
	out := make([]*follower, 0, len(subs))
	for _, f := range subs {
		out = append(out, f)
	}
	return out
}

// Publish sends v as JSON to every socket of sessionID. Writes happen outside
// the hub lock, so a slow socket only delays its own session. Sockets that
// fail the write are closed and forgotten.
func (h *Hub) Publish(sessionID string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	for _, f := range h.followers(sessionID) {
		if err := f.write(b); err != nil {
			h.Remove(sessionID, f.ws)
		}
	}
}

func (f *follower) write(b []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = f.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return f.ws.WriteMessage(websocket.TextMessage, b)
}

// Count returns the number of sockets following sessionID.
func (h *Hub) Count(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions[sessionID])
}

func (h *Hub) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	st := Stats{Sessions: len(h.sessions)}
	for _, subs := range h.sessions {
		st.WSClients += len(subs)
	}
	return st
}

// CloseSession disconnects every socket of sessionID.
func (h *Hub) CloseSession(sessionID string) {
	h.mu.Lock()
	subs := h.sessions[sessionID]
	delete(h.sessions, sessionID)
	h.mu.Unlock()

	for ws := range subs {
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
			time.Now().Add(writeWait))
		_ = ws.Close()
	}
}
