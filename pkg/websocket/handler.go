package websocket

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"urmonov-web/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// MessageTypeConnected is sent once after the upgrade
const MessageTypeConnected = "connected"

// HandleWebSocket upgrades the request and subscribes the connection to
// the events of the visitor returned by visitorID.
func HandleWebSocket(hub *Hub, visitorID func(*http.Request) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitor := visitorID(r)
		if visitor == "" {
			http.Error(w, "Bad Request: visitor cookie required", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("WebSocket upgrade error", zap.Error(err))
			return
		}

		client := &Client{
			ID:        uuid.New().String(),
			VisitorID: visitor,
			Send:      make(chan []byte, 16),
			Hub:       hub,
		}
		wsConn := NewConnection(conn, client)
		client.Conn = wsConn

		if !hub.Register(client) {
			conn.Close()
			return
		}

		welcome := &Message{Type: MessageTypeConnected, Payload: map[string]string{"client_id": client.ID}}
		client.Send <- welcome.ToJSON()

		go wsConn.WritePump()
		go wsConn.ReadPump()
	}
}
