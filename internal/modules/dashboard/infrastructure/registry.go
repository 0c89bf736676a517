package infrastructure

import (
	"context"
	"log/slog"
	"sync"

	"bizdash/internal/modules/dashboard/application/port"
	"bizdash/internal/modules/dashboard/domain"
	"bizdash/internal/shared/normalization"
)

// HandlerRegistry routes broker events to the handler registered for their entity.
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[string]port.EventHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string]port.EventHandler)}
}

func (r *HandlerRegistry) Register(h port.EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[normalization.NormalizeEntity(h.Entity())] = h
}

// Dispatch ignores events for entities nobody registered.
func (r *HandlerRegistry) Dispatch(ctx context.Context, msg *domain.Message) error {
	if msg == nil {
		return nil
	}
	r.mu.RLock()
	handler, ok := r.handlers[normalization.NormalizeEntity(msg.Entity)]
	r.mu.RUnlock()
	if !ok {
		slog.Debug("no handler for event", slog.String("entity", msg.Entity), slog.String("topic", msg.Topic))
		return nil
	}
	return handler.Handle(ctx, msg)
}
