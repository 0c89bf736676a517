package usecase

import (
	"context"
	"log/slog"

	"bizdash/internal/modules/dashboard/application/port"
	"bizdash/internal/modules/dashboard/domain"
)

// BroadcastUseCase forwards reference store updates to websocket subscribers.
type BroadcastUseCase struct {
	Broadcaster port.Broadcaster
}

func NewBroadcastUseCase(b port.Broadcaster) *BroadcastUseCase {
	return &BroadcastUseCase{Broadcaster: b}
}

func (uc *BroadcastUseCase) Execute(ctx context.Context, update domain.ReferenceUpdate) {
	if uc == nil || uc.Broadcaster == nil {
		return
	}
	slog.Debug("broadcast reference update", slog.String("company_id", update.CompanyID), slog.String("kind", update.Kind), slog.Int("count", update.Count))
	uc.Broadcaster.Broadcast(ctx, update)
}

// StoreHook adapts Execute to the reference store's OnUpdate signature.
func (uc *BroadcastUseCase) StoreHook() func(companyID, kind string, count int) {
	return func(companyID, kind string, count int) {
		uc.Execute(context.Background(), domain.NewReferenceUpdate(companyID, kind, count))
	}
}
