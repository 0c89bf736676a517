package port

import (
	"context"

	"bizdash/internal/modules/dashboard/domain"
)

// ReferenceFetcher is the read side used by page loaders.
type ReferenceFetcher interface {
	ListBranches(ctx context.Context, companyID string) ([]domain.Branch, error)
	ListVendors(ctx context.Context, companyID string) ([]domain.Vendor, error)
	ListProducts(ctx context.Context, companyID string) ([]domain.Product, error)
	ListTransferOrders(ctx context.Context, companyID string) ([]domain.TransferOrder, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ResourceClient is the full set of dashboard API operations.
type ResourceClient interface {
	ReferenceFetcher

	ListCategories(ctx context.Context, companyID string) ([]domain.Category, error)
	ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	GetCompany(ctx context.Context, companyID string) (domain.Company, error)
	ListPurchaseOrders(ctx context.Context, companyID string) ([]domain.PurchaseOrder, error)
	ListRequisitionOrders(ctx context.Context, companyID string) ([]domain.RequisitionOrder, error)
	ListInvoiceReceipts(ctx context.Context, branchID, invoiceID string) ([]domain.Receipt, error)
	ListVouchers(ctx context.Context, companyID string) ([]domain.Voucher, error)

	CreateCompany(ctx context.Context, form domain.CompanyForm) (domain.Company, error)
	CreateUser(ctx context.Context, companyID string, user domain.NewUser) (domain.User, error)
	CreateVoucher(ctx context.Context, companyID string, voucher domain.NewVoucher) (domain.Voucher, error)
	UpdateProduct(ctx context.Context, companyID, productID string, patch domain.ProductPatch) (domain.Product, error)
	DeleteProduct(ctx context.Context, companyID, productID string) error
}
