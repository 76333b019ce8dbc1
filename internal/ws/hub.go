package ws

import (
	"log/slog"
	"sync"

	"github.com/breakthecode/server/internal/model"
)

// Hub tracks live connections by connection ID so notifications can be
// routed to specific players. Rooms hold at most two players, so a single
// process-wide registry is enough; recipients are resolved per event.
type Hub struct {
	mu      sync.RWMutex
	clients map[model.ConnectionID]*Client
	logger  *slog.Logger
}

// NewHub creates a new Hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[model.ConnectionID]*Client),
		logger:  logger.With(slog.String("component", "ws")),
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.clients[client.id] = client
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("client connected",
		slog.String("conn_id", string(client.id)),
		slog.Int("total_clients", total),
	)
}

// Unregister removes a client and closes its outbound queue
func (h *Hub) Unregister(id model.ConnectionID) {
	h.mu.Lock()
	client, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
		close(client.send)
	}
	total := len(h.clients)
	h.mu.Unlock()

	if ok {
		h.logger.Info("client disconnected",
			slog.String("conn_id", string(id)),
			slog.Int("total_clients", total),
		)
	}
}

// Send queues a message for one connection. Messages to unknown connections
// or full queues are dropped; a slow reader must not stall the game.
func (h *Hub) Send(id model.ConnectionID, msg []byte) {
	h.mu.RLock()
	client, ok := h.clients[id]
	h.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case client.send <- msg:
	default:
		h.logger.Warn("message dropped - client buffer full",
			slog.String("conn_id", string(id)),
		)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
