package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"bizdash/internal/modules/dashboard/domain"
)

func (c *ResourceClient) ListBranches(ctx context.Context, companyID string) ([]domain.Branch, error) {
	return listOf[domain.Branch](ctx, c, opListBranches, companyID)
}

func (c *ResourceClient) ListCategories(ctx context.Context, companyID string) ([]domain.Category, error) {
	return listOf[domain.Category](ctx, c, opListCategories, companyID)
}

func (c *ResourceClient) ListProducts(ctx context.Context, companyID string) ([]domain.Product, error) {
	return listOf[domain.Product](ctx, c, opListProducts, companyID)
}

func (c *ResourceClient) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	return listOf[domain.Account](ctx, c, opListAccounts, companyID)
}

func (c *ResourceClient) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return listOf[domain.Company](ctx, c, opListCompanies)
}

func (c *ResourceClient) GetCompany(ctx context.Context, companyID string) (domain.Company, error) {
	return one[domain.Company](ctx, c, opGetCompany, nil, companyID)
}

func (c *ResourceClient) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return listOf[domain.Country](ctx, c, opListCountries)
}

func (c *ResourceClient) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return listOf[domain.Currency](ctx, c, opListCurrencies)
}

func (c *ResourceClient) ListPurchaseOrders(ctx context.Context, companyID string) ([]domain.PurchaseOrder, error) {
	return listOf[domain.PurchaseOrder](ctx, c, opListPurchaseOrders, companyID)
}

func (c *ResourceClient) ListRequisitionOrders(ctx context.Context, companyID string) ([]domain.RequisitionOrder, error) {
	return listOf[domain.RequisitionOrder](ctx, c, opListRequisitionOrders, companyID)
}

func (c *ResourceClient) ListTransferOrders(ctx context.Context, companyID string) ([]domain.TransferOrder, error) {
	return listOf[domain.TransferOrder](ctx, c, opListTransferOrders, companyID)
}

func (c *ResourceClient) ListVendors(ctx context.Context, companyID string) ([]domain.Vendor, error) {
	return listOf[domain.Vendor](ctx, c, opListVendors, companyID)
}

func (c *ResourceClient) ListInvoiceReceipts(ctx context.Context, branchID, invoiceID string) ([]domain.Receipt, error) {
	return listOf[domain.Receipt](ctx, c, opListInvoiceReceipts, branchID, invoiceID)
}

func (c *ResourceClient) ListVouchers(ctx context.Context, companyID string) ([]domain.Voucher, error) {
	return listOf[domain.Voucher](ctx, c, opListVouchers, companyID)
}

// CreateCompany posts the form as multipart data; the logo, when present, is sent as the
// "logo" file part with its sniffed content type.
func (c *ResourceClient) CreateCompany(ctx context.Context, form domain.CompanyForm) (domain.Company, error) {
	if err := form.Validate(); err != nil {
		slog.Warn("create company rejected", slog.Any("error", err))
		return domain.Company{}, fmt.Errorf("%s: %w", opCreateCompany, err)
	}
	body := multipartBody{fields: form.Fields(), fileField: "logo", file: form.Logo}
	return one[domain.Company](ctx, c, opCreateCompany, body)
}

func (c *ResourceClient) CreateUser(ctx context.Context, companyID string, user domain.NewUser) (domain.User, error) {
	return one[domain.User](ctx, c, opCreateUser, jsonBody{value: user}, companyID)
}

func (c *ResourceClient) CreateVoucher(ctx context.Context, companyID string, voucher domain.NewVoucher) (domain.Voucher, error) {
	return one[domain.Voucher](ctx, c, opCreateVoucher, jsonBody{value: voucher}, companyID)
}

func (c *ResourceClient) UpdateProduct(ctx context.Context, companyID, productID string, patch domain.ProductPatch) (domain.Product, error) {
	return one[domain.Product](ctx, c, opUpdateProduct, jsonBody{value: patch}, companyID, productID)
}

// DeleteProduct ignores any response body.
func (c *ResourceClient) DeleteProduct(ctx context.Context, companyID, productID string) error {
	_, err := invoke[json.RawMessage](ctx, c, opDeleteProduct, nil, companyID, productID)
	return err
}
