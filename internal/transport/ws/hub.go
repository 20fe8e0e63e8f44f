// Package ws streams card board events to browser clients over websockets.
package ws

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/dailydose-backend/internal/domain"
)

// DefaultBuffer is the number of events queued per client before new events
// for that client are dropped.
const DefaultBuffer = 64

type client struct {
	id       string
	outbound chan domain.CardEvent
}

// Hub fans card events out to connected clients. Publish never blocks: a
// client whose buffer is full misses the event.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	buffer  int
	log     *slog.Logger
}

// NewHub creates a Hub. A non-positive buffer means DefaultBuffer.
func NewHub(logger *slog.Logger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		buffer:  buffer,
		log:     logger.With("component", "ws_hub"),
	}
}

func (h *Hub) register() *client {
	c := &client{
		id:       uuid.NewString(),
		outbound: make(chan domain.CardEvent, h.buffer),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	h.log.Debug("client connected", slog.String("client_id", c.id), slog.Int("clients", n))
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.outbound)
	}
	n := len(h.clients)
	h.mu.Unlock()

	h.log.Debug("client disconnected", slog.String("client_id", c.id), slog.Int("clients", n))
}

// Publish queues ev for every connected client.
func (h *Hub) Publish(ev domain.CardEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.outbound <- ev:
		default:
			h.log.Warn("dropping event, client buffer full",
				slog.String("client_id", c.id),
				slog.String("type", ev.Type.String()),
			)
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		delete(h.clients, c)
		close(c.outbound)
	}
}
