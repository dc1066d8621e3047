package websocket

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"urmonov-web/pkg/logger"
)

// Client represents a WebSocket client connection
type Client struct {
	ID        string
	VisitorID string
	Send      chan []byte
	Hub       *Hub
	Conn      *Connection
}

// Hub maintains active clients and relays visitor events
type Hub struct {
	// Registered clients by visitor id (one visitor may have several tabs)
	clients map[string]map[*Client]bool

	// Outgoing events
	broadcast chan *Message

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	mu sync.RWMutex
}

// Message is an event addressed to every connection of one visitor
type Message struct {
	VisitorID string `json:"-"`
	Type      string `json:"type"`
	Payload   any    `json:"payload,omitempty"`
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run starts the Hub's main loop and returns when ctx is done
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.VisitorID] == nil {
				h.clients[client.VisitorID] = make(map[*Client]bool)
			}
			h.clients[client.VisitorID][client] = true
			total := len(h.clients[client.VisitorID])
			h.mu.Unlock()
			logger.Debug("WebSocket client registered",
				zap.String("visitor_id", client.VisitorID),
				zap.String("client_id", client.ID),
				zap.Int("connections", total),
			)

		case client := <-h.unregister:
			h.remove(client)
			logger.Debug("WebSocket client unregistered",
				zap.String("visitor_id", client.VisitorID),
				zap.String("client_id", client.ID),
			)

		case message := <-h.broadcast:
			h.mu.RLock()
			targets := make([]*Client, 0, len(h.clients[message.VisitorID]))
			for client := range h.clients[message.VisitorID] {
				targets = append(targets, client)
			}
			h.mu.RUnlock()

			data := message.ToJSON()
			for _, client := range targets {
				select {
				case client.Send <- data:
				default:
					// sekin klient: ulanish yopiladi
					h.remove(client)
				}
			}
		}
	}
}

// Publish queues an event for every connection of a visitor. Events for
// visitors without an open page are dropped by Run.
func (h *Hub) Publish(visitorID, messageType string, payload any) {
	msg := &Message{VisitorID: visitorID, Type: messageType, Payload: payload}
	select {
	case h.broadcast <- msg:
	default:
		logger.Warn("WebSocket broadcast queue full, event dropped",
			zap.String("visitor_id", visitorID),
			zap.String("type", messageType),
		)
	}
}

// Register adds a client; it reports false once the hub has stopped
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client unless the hub has already stopped
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// GetClientCount returns the number of open connections of a visitor
func (h *Hub) GetClientCount(visitorID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[visitorID])
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.VisitorID]
	if !ok || !clients[client] {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.clients, client.VisitorID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for visitor, clients := range h.clients {
		for client := range clients {
			close(client.Send)
		}
		delete(h.clients, visitor)
	}
}
