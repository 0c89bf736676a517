package transport

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"bizdash/internal/modules/dashboard/domain"
)

const maxLogoSize = 5 << 20

// CreateCompany accepts the same multipart form the upstream expects and relays it.
func (h *Handler) CreateCompany(c echo.Context) error {
	form := domain.CompanyForm{
		Name:     strings.TrimSpace(c.FormValue("name")),
		Email:    strings.TrimSpace(c.FormValue("email")),
		Phone:    strings.TrimSpace(c.FormValue("phone")),
		Address:  strings.TrimSpace(c.FormValue("address")),
		Country:  strings.TrimSpace(c.FormValue("country")),
		Currency: strings.TrimSpace(c.FormValue("currency")),
	}

	logo, err := readLogo(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}
	form.Logo = logo

	company, err := h.client.CreateCompany(c.Request().Context(), form)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, company)
}

func readLogo(c echo.Context) (*domain.Upload, error) {
	header, err := c.FormFile("logo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid logo: %w", err)
	}
	if header.Size > maxLogoSize {
		return nil, fmt.Errorf("logo exceeds %d bytes", maxLogoSize)
	}
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open logo: %w", err)
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxLogoSize))
	if err != nil {
		return nil, fmt.Errorf("read logo: %w", err)
	}
	return &domain.Upload{Filename: header.Filename, Data: data}, nil
}

func (h *Handler) CreateUser(c echo.Context) error {
	var user domain.NewUser
	if err := c.Bind(&user); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid user payload"})
	}
	created, err := h.client.CreateUser(c.Request().Context(), c.Param("companyId"), user)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) CreateVoucher(c echo.Context) error {
	var voucher domain.NewVoucher
	if err := c.Bind(&voucher); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid voucher payload"})
	}
	created, err := h.client.CreateVoucher(c.Request().Context(), c.Param("companyId"), voucher)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	var patch domain.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid product payload"})
	}
	product, err := h.client.UpdateProduct(c.Request().Context(), c.Param("companyId"), c.Param("productId"), patch)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	if err := h.client.DeleteProduct(c.Request().Context(), c.Param("companyId"), c.Param("productId")); err != nil {
		return h.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
