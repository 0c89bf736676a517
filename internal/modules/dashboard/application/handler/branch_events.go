package handler

import (
	"context"
	"log/slog"
	"strings"

	"bizdash/internal/modules/dashboard/application/port"
	"bizdash/internal/modules/dashboard/application/store"
	"bizdash/internal/modules/dashboard/domain"
	"bizdash/internal/shared/auth"
)

// BranchEventHandler reloads a company's branches when the upstream reports a branch
// change. Background refreshes have no caller, so the configured service token is placed
// on the context.
type BranchEventHandler struct {
	refresher      port.BranchRefresher
	serviceToken   string
	allowedActions map[string]struct{}
}

func NewBranchEventHandler(refresher port.BranchRefresher, serviceToken string, allowedActions []string) *BranchEventHandler {
	if len(allowedActions) == 0 {
		allowedActions = []string{domain.ActionCreated, domain.ActionUpdated, domain.ActionDeleted}
	}
	actionSet := make(map[string]struct{}, len(allowedActions))
	for _, a := range allowedActions {
		if v := strings.TrimSpace(strings.ToLower(a)); v != "" {
			actionSet[v] = struct{}{}
		}
	}
	return &BranchEventHandler{
		refresher:      refresher,
		serviceToken:   strings.TrimSpace(serviceToken),
		allowedActions: actionSet,
	}
}

func (h *BranchEventHandler) Entity() string { return store.KindBranches }

func (h *BranchEventHandler) Handle(ctx context.Context, msg *domain.Message) error {
	if msg == nil {
		return nil
	}
	if _, ok := h.allowedActions[strings.ToLower(msg.Action)]; !ok {
		slog.Debug("branch event ignored", slog.String("action", msg.Action))
		return nil
	}
	companyID := strings.TrimSpace(msg.CompanyID)
	if companyID == "" && msg.Metadata != nil {
		companyID = strings.TrimSpace(msg.Metadata["companyId"])
	}
	if companyID == "" {
		slog.Warn("branch event without company", slog.String("topic", msg.Topic), slog.String("resourceId", msg.ResourceID))
		return nil
	}

	if h.serviceToken != "" {
		ctx = auth.WithToken(ctx, h.serviceToken)
	}
	_, err := h.refresher.RefreshBranches(ctx, companyID)
	return err
}

var _ port.EventHandler = (*BranchEventHandler)(nil)
