// Package ws broadcasts validation task events to websocket clients.
package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	applog "github.com/faang-dcc/validator-api/internal/platform/logging"
)

// sendQueueSize bounds the per-client outbound queue. A client that
// cannot keep up is disconnected rather than allowed to back up the hub.
const sendQueueSize = 5000

// Hub fans validation events out to connected clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	closed  bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
	}
}

// Broadcast sends an event envelope to every connected client.
func (h *Hub) Broadcast(event string, payload map[string]any) {
	data, err := encodeEvent(event, payload)
	if err != nil {
		applog.LogError(context.Background(), "Failed to encode websocket event", err,
			zap.String("event", event),
		)
		return
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		h.deliver(c, data)
	}
}

// SendTo sends an event to a single client. Returns false when the
// client is not connected.
func (h *Hub) SendTo(clientID, event string, payload map[string]any) bool {
	data, err := encodeEvent(event, payload)
	if err != nil {
		return false
	}

	h.mu.RLock()
	c, ok := h.clients[clientID]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	h.deliver(c, data)
	return true
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects all clients and rejects new registrations.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.clients = make(map[string]*client)
	h.mu.Unlock()

	for _, c := range targets {
		c.closeSend()
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c.id] = c
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if cur, ok := h.clients[c.id]; ok && cur == c {
		delete(h.clients, c.id)
	}
	h.mu.Unlock()
	c.closeSend()
}

// deliver queues data for a client, dropping the client when its queue
// is full.
func (h *Hub) deliver(c *client, data []byte) {
	select {
	case c.send <- data:
	default:
		applog.LogWarn(context.Background(), "Dropping slow websocket client",
			zap.String("client_id", c.id),
		)
		h.unregister(c)
	}
}

func encodeEvent(event string, payload map[string]any) ([]byte, error) {
	msg := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		msg[k] = v
	}
	msg["type"] = event
	msg["ts"] = time.Now().UTC().Format(time.RFC3339)
	return json.Marshal(msg)
}
