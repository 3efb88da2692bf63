package sync

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the mobile shell connects from a file:// or capacitor origin
	},
}

// WSHandler upgrades the request and follows the session named by the :id
// path parameter until the client goes away.
func WSHandler(hub *Hub, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Debug("ws upgrade failed", "session", sessionID, "error", err)
			return
		}

		// Welcome goes out before the hub can write to the socket.
		_ = ws.WriteJSON(gin.H{"type": "welcome", "session_id": sessionID})

		hub.Add(sessionID, ws)
		log.Info("ws client connected", "session", sessionID, "clients", hub.Count(sessionID))

		// Incoming messages are ignored; reading keeps control frames flowing.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Remove(sessionID, ws)
		log.Info("ws client disconnected", "session", sessionID)
	}
}
