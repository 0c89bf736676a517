package transport

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"bizdash/internal/modules/dashboard/application/port"
	"bizdash/internal/modules/dashboard/domain"
	"bizdash/internal/shared/auth"
	"bizdash/internal/shared/httputil"
)

// NewErrorMapper maps dashboard failures to gateway responses. Upstream *port.APIError
// values keep their status and message.
func NewErrorMapper() *httputil.ErrorMapper {
	return httputil.NewErrorMapper().
		WithMapping(auth.ErrMissingToken, http.StatusUnauthorized, "missing token").
		WithMapping(auth.ErrInvalidToken, http.StatusUnauthorized, "invalid token").
		WithMapping(port.ErrMissingParameter, http.StatusBadRequest, "missing path parameter").
		WithMapping(port.ErrInvalidPayload, http.StatusBadGateway, "invalid response from dashboard API").
		WithMapping(domain.ErrInvalidRecord, http.StatusBadRequest, "invalid request").
		WithDefault(http.StatusBadGateway, "dashboard API unavailable")
}

type errorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) respondError(c echo.Context, err error) error {
	info := h.errors.Map(err)
	slog.Warn("request failed",
		slog.String("method", c.Request().Method),
		slog.String("path", c.Path()),
		slog.Int("status", info.Status),
		slog.String("reqID", c.Response().Header().Get(echo.HeaderXRequestID)),
		slog.Any("error", err),
	)
	return c.JSON(info.Status, errorResponse{Message: info.Message})
}
