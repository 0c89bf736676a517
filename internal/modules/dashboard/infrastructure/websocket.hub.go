package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"bizdash/internal/modules/dashboard/application/port"
	"bizdash/internal/modules/dashboard/domain"
)

// Hub fans reference updates out to the websocket clients of the company they belong to.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) AttachClient(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	slog.Info("ws client attached", slog.String("sessionId", c.sessionID), slog.String("companyId", c.companyID))
}

func (h *Hub) detachClient(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if !ok {
		return
	}
	c.close()
	slog.Info("ws client detached", slog.String("sessionId", c.sessionID), slog.String("companyId", c.companyID))
}

// Len reports the number of attached clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues update on every client attached for update.CompanyID. It never blocks:
// a client whose send buffer is full is detached.
func (h *Hub) Broadcast(_ context.Context, update domain.ReferenceUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		slog.Error("broadcast marshal error", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		if c.companyID == update.CompanyID {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.enqueue(data) {
			slog.Warn("websocket send buffer full", slog.String("sessionId", c.sessionID))
			go h.detachClient(c)
		}
	}
}

var _ port.Broadcaster = (*Hub)(nil)
