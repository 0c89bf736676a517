package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"bizdash/internal/modules/dashboard/application/store"
	"bizdash/internal/modules/dashboard/domain"
	"bizdash/internal/modules/dashboard/infrastructure"
	"bizdash/internal/shared/auth"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var sessionCounter atomic.Uint64

// ReferenceWebsocket streams the reference.updated events of one company. The company comes
// from the companyId query parameter, or from the token when that is absent. The token may
// come from the Authorization header or the token query parameter; it is checked only when
// a validator is configured. The company's current counts are sent right after connecting.
func (h *Handler) ReferenceWebsocket(c echo.Context) error {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	peerIP := c.RealIP()
	companyID := strings.TrimSpace(c.QueryParam("companyId"))

	if h.validator != nil {
		claims, err := h.validator.Validate(auth.ExtractToken(c.Request(), "token"))
		if err != nil {
			slog.Warn("reference ws auth failed", slog.String("ip", peerIP), slog.Any("error", err))
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		}
		if companyID == "" {
			companyID = claims.CompanyID
		}
		if !claims.HasCompany(companyID) {
			return echo.NewHTTPError(http.StatusForbidden, "company not allowed for this session")
		}
	}
	if companyID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "companyId is required")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("reference ws upgrade failed", slog.String("ip", peerIP), slog.String("reqID", requestID), slog.Any("error", err))
		return err
	}

	sessionID := fmt.Sprintf("ref-%d", sessionCounter.Add(1))
	client := infrastructure.NewClient(h.hub, conn, sessionID, companyID, 8)
	h.hub.AttachClient(client)

	refs := h.pages.Store().For(companyID)
	client.SendJSON(domain.NewReferenceUpdate(companyID, store.KindBranches, refs.Branches.Len()))
	client.SendJSON(domain.NewReferenceUpdate(companyID, store.KindVendors, refs.Vendors.Len()))

	go client.WritePump()
	go client.ReadPump()

	slog.Info("reference ws connected", slog.String("sessionId", sessionID), slog.String("ip", peerIP), slog.String("reqID", requestID))
	return nil
}
