package infrastructure

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"bizdash/internal/modules/dashboard/application/port"
)

// pathBuilder renders an endpoint path from its positional parameters.
type pathBuilder func(params []string) (string, error)

// endpoint describes one remote operation: verb, path template and the message reported
// when the API fails without a usable error body.
type endpoint struct {
	method   string
	path     pathBuilder
	fallback string
}

const (
	opListBranches          = "list_branches"
	opListCategories        = "list_categories"
	opListProducts          = "list_products"
	opListAccounts          = "list_accounts"
	opListCompanies         = "list_companies"
	opGetCompany            = "get_company"
	opListCountries         = "list_countries"
	opListCurrencies        = "list_currencies"
	opListPurchaseOrders    = "list_purchase_orders"
	opListRequisitionOrders = "list_requisition_orders"
	opListTransferOrders    = "list_transfer_orders"
	opListVendors           = "list_vendors"
	opListInvoiceReceipts   = "list_invoice_receipts"
	opListVouchers          = "list_vouchers"
	opCreateCompany         = "create_company"
	opCreateUser            = "create_user"
	opCreateVoucher         = "create_voucher"
	opUpdateProduct         = "update_product"
	opDeleteProduct         = "delete_product"
)

var endpoints = map[string]endpoint{
	opListBranches:          {http.MethodGet, pathTemplate("/api/companies/%s/branches/"), "Failed to fetch company branches."},
	opListCategories:        {http.MethodGet, pathTemplate("/api/companies/%s/categories/"), "Failed to fetch categories."},
	opListProducts:          {http.MethodGet, pathTemplate("/api/companies/%s/products/"), "Failed to fetch products."},
	opListAccounts:          {http.MethodGet, pathTemplate("/api/companies/%s/accounts/"), "Failed to fetch accounts."},
	opListCompanies:         {http.MethodGet, pathTemplate("/api/companies/"), "Failed to fetch companies."},
	opGetCompany:            {http.MethodGet, pathTemplate("/api/companies/%s/"), "Failed to fetch company."},
	opListCountries:         {http.MethodGet, pathTemplate("/api/countries/"), "Failed to fetch countries."},
	opListCurrencies:        {http.MethodGet, pathTemplate("/api/currencies/"), "Failed to fetch currencies."},
	opListPurchaseOrders:    {http.MethodGet, pathTemplate("/api/companies/%s/purchase-orders/"), "Failed to fetch purchase orders."},
	opListRequisitionOrders: {http.MethodGet, pathTemplate("/api/companies/%s/requisitions/"), "Failed to fetch requisition orders."},
	opListTransferOrders:    {http.MethodGet, pathTemplate("/api/companies/%s/transfers/"), "Failed to fetch transfer orders."},
	opListVendors:           {http.MethodGet, pathTemplate("/api/companies/%s/vendors/"), "Failed to fetch vendors."},
	opListInvoiceReceipts:   {http.MethodGet, pathTemplate("/api/branches/%s/invoices/%s/receipts/"), "Failed to fetch invoice receipts."},
	opListVouchers:          {http.MethodGet, pathTemplate("/api/companies/%s/vouchers/"), "Failed to fetch vouchers."},
	opCreateCompany:         {http.MethodPost, pathTemplate("/api/companies/"), "Failed to create company."},
	opCreateUser:            {http.MethodPost, pathTemplate("/api/companies/%s/users/"), "Failed to create user."},
	opCreateVoucher:         {http.MethodPost, pathTemplate("/api/companies/%s/vouchers/"), "Failed to create voucher."},
	opUpdateProduct:         {http.MethodPatch, pathTemplate("/api/companies/%s/products/%s/"), "Failed to update product."},
	opDeleteProduct:         {http.MethodDelete, pathTemplate("/api/companies/%s/products/%s/"), "Failed to delete product."},
}

// pathTemplate substitutes each %s with a trimmed, path-escaped parameter. Blank or missing
// parameters fail with port.ErrMissingParameter.
func pathTemplate(format string) pathBuilder {
	want := strings.Count(format, "%s")
	return func(params []string) (string, error) {
		if len(params) != want {
			return "", fmt.Errorf("%w: expected %d, got %d", port.ErrMissingParameter, want, len(params))
		}
		args := make([]any, want)
		for i, param := range params {
			trimmed := strings.TrimSpace(param)
			if trimmed == "" {
				return "", port.ErrMissingParameter
			}
			args[i] = url.PathEscape(trimmed)
		}
		if want == 0 {
			return format, nil
		}
		return fmt.Sprintf(format, args...), nil
	}
}
