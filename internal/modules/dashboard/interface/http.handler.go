package transport

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bizdash/internal/modules/dashboard/application/port"
	"bizdash/internal/modules/dashboard/application/usecase"
	"bizdash/internal/modules/dashboard/infrastructure"
	"bizdash/internal/shared/auth"
	"bizdash/internal/shared/httputil"
)

// Handler serves the dashboard gateway routes.
type Handler struct {
	pages     *usecase.PagesUseCase
	client    port.ResourceClient
	hub       *infrastructure.Hub
	validator auth.TokenValidator
	errors    *httputil.ErrorMapper
}

// NewHandler builds the gateway handler. A nil validator forwards incoming bearer tokens
// without checking them locally.
func NewHandler(pages *usecase.PagesUseCase, client port.ResourceClient, hub *infrastructure.Hub, validator auth.TokenValidator) *Handler {
	return &Handler{
		pages:     pages,
		client:    client,
		hub:       hub,
		validator: validator,
		errors:    NewErrorMapper(),
	}
}

// Register mounts every route on e. gatherer backs /metrics and may be nil.
func (h *Handler) Register(e *echo.Echo, gatherer prometheus.Gatherer) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	e.GET("/ws/reference", h.ReferenceWebsocket)

	api := e.Group("/api", h.SessionMiddleware())
	api.GET("/pages/company-setup", h.CompanySetupPage)
	api.POST("/companies", h.CreateCompany)
	api.GET("/companies/:companyId/pages/orders", h.OrderPage)
	api.GET("/companies/:companyId/pages/transfers", h.TransfersPage)
	api.GET("/companies/:companyId/branches", h.RefreshBranches)
	api.GET("/companies/:companyId/reference/branches", h.ReferenceBranches)
	api.POST("/companies/:companyId/users", h.CreateUser)
	api.POST("/companies/:companyId/vouchers", h.CreateVoucher)
	api.PATCH("/companies/:companyId/products/:productId", h.UpdateProduct)
	api.DELETE("/companies/:companyId/products/:productId", h.DeleteProduct)
	api.GET("/branches/:branchId/invoices/:invoiceId/receipts", h.InvoiceReceipts)
}

func (h *Handler) OrderPage(c echo.Context) error {
	page, err := h.pages.LoadOrderPage(c.Request().Context(), c.Param("companyId"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) TransfersPage(c echo.Context) error {
	page, err := h.pages.LoadTransfersPage(c.Request().Context(), c.Param("companyId"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) CompanySetupPage(c echo.Context) error {
	page, err := h.pages.LoadCompanySetupPage(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// RefreshBranches reloads the company's branches and returns them.
func (h *Handler) RefreshBranches(c echo.Context) error {
	branches, err := h.pages.RefreshBranches(c.Request().Context(), c.Param("companyId"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, branches)
}

// ReferenceBranches returns whatever the company's reference collection currently holds
// without calling upstream.
func (h *Handler) ReferenceBranches(c echo.Context) error {
	return c.JSON(http.StatusOK, h.pages.Store().For(c.Param("companyId")).Branches.Read())
}

func (h *Handler) InvoiceReceipts(c echo.Context) error {
	receipts, err := h.client.ListInvoiceReceipts(c.Request().Context(), c.Param("branchId"), c.Param("invoiceId"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, receipts)
}

// SessionMiddleware forwards the caller's bearer token to upstream calls. With a
// validator configured the token must be valid and, for company routes, scoped to the
// requested company.
func (h *Handler) SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := auth.ExtractBearerToken(c.Request())
			if h.validator != nil {
				claims, err := h.validator.Validate(token)
				if err != nil {
					return h.respondError(c, err)
				}
				if companyID := strings.TrimSpace(c.Param("companyId")); companyID != "" && !claims.HasCompany(companyID) {
					return c.JSON(http.StatusForbidden, errorResponse{Message: "company not allowed for this session"})
				}
				c.Set("claims", claims)
			}
			if token != "" {
				c.SetRequest(c.Request().WithContext(auth.WithToken(c.Request().Context(), token)))
			}
			return next(c)
		}
	}
}
