package realtime

import (
	"encoding/json"
	"log"
	"sync"
)

// Client represents a single websocket client connection. The network conn
// itself is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub tracks connected dashboard clients. Allocation results and alerts are
// team-wide, so every event goes to every client.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
}

var hubInstance *Hub
var once sync.Once

// GetHub returns a singleton hub instance.
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = &Hub{clients: make(map[Client]struct{})}
	})
	return hubInstance
}

// Register adds a client.
func (h *Hub) Register(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a client.
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// Broadcast sends a message to every connected client. Failed writes are
// left for the owning handler to clean up.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.Send(message)
	}
}

// BroadcastEvent marshals an event payload and broadcasts it.
func (h *Hub) BroadcastEvent(event map[string]any) {
	bytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal realtime event: %v", err)
		return
	}
	h.Broadcast(bytes)
}
