package port

import (
	"context"

	"bizdash/internal/modules/dashboard/domain"
)

// Broadcaster pushes reference updates to connected websocket clients.
type Broadcaster interface {
	Broadcast(ctx context.Context, update domain.ReferenceUpdate)
}

// EventHandler reacts to broker events for one canonical entity.
type EventHandler interface {
	Entity() string
	Handle(ctx context.Context, msg *domain.Message) error
}

// BranchRefresher reloads a company's branches into the reference store.
type BranchRefresher interface {
	RefreshBranches(ctx context.Context, companyID string) ([]domain.Branch, error)
}
