package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"

	"bizdash/internal/modules/dashboard/application/port"
	"bizdash/internal/modules/dashboard/domain"
	"bizdash/internal/platform/tracing"
	"bizdash/internal/shared/auth"
)

type capturedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

type upstream struct {
	mu       sync.Mutex
	requests []capturedRequest
	status   int
	body     string
}

func newUpstream(t *testing.T, status int, body string) (*upstream, *httptest.Server) {
	t.Helper()
	u := &upstream{status: status, body: body}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		u.mu.Lock()
		u.requests = append(u.requests, capturedRequest{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone(), Body: data})
		u.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(u.status)
		_, _ = w.Write([]byte(u.body))
	}))
	t.Cleanup(server.Close)
	return u, server
}

func (u *upstream) last(t *testing.T) capturedRequest {
	t.Helper()
	u.mu.Lock()
	defer u.mu.Unlock()
	require.NotEmpty(t, u.requests, "upstream saw no request")
	return u.requests[len(u.requests)-1]
}

func (u *upstream) count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.requests)
}

func newTestClient(server *httptest.Server, tokens auth.TokenProvider) *ResourceClient {
	return NewResourceClient(ResourceClientConfig{
		BaseURL:    server.URL,
		Tokens:     tokens,
		HTTPClient: server.Client(),
	})
}

func TestResourceClient_ListBranchesDecodesVerbatim(t *testing.T) {
	t.Parallel()

	body := `[{"id":1,"name":"Main","code":"HQ","is_main":true},{"id":"b-2","name":"Annex"}]`
	up, server := newUpstream(t, http.StatusOK, body)
	client := newTestClient(server, auth.StaticToken("tok-1"))

	branches, err := client.ListBranches(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, []domain.Branch{
		{ID: "1", Name: "Main", Code: "HQ", IsMain: true},
		{ID: "b-2", Name: "Annex"},
	}, branches)

	req := up.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/companies/42/branches/", req.Path)
	assert.Equal(t, "Bearer tok-1", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
}

func TestResourceClient_ErrorMessages(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		status int
		body   string
		want   string
	}{
		"server message":     {status: http.StatusBadRequest, body: `{"message":"Company is archived."}`, want: "Company is archived."},
		"unparsable body":    {status: http.StatusInternalServerError, body: `<html>oops</html>`, want: "Failed to fetch company branches."},
		"empty body":         {status: http.StatusBadGateway, body: ``, want: "Failed to fetch company branches."},
		"blank message":      {status: http.StatusForbidden, body: `{"message":"  "}`, want: "Failed to fetch company branches."},
		"other shaped error": {status: http.StatusNotFound, body: `{"detail":"Not found."}`, want: "Failed to fetch company branches."},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, server := newUpstream(t, tc.status, tc.body)
			client := newTestClient(server, nil)

			branches, err := client.ListBranches(context.Background(), "42")
			require.Error(t, err)
			assert.Nil(t, branches)
			assert.Equal(t, tc.want, err.Error())

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, opListBranches, apiErr.Operation)
		})
	}
}

func TestResourceClient_NotFoundIsDetectable(t *testing.T) {
	t.Parallel()

	_, server := newUpstream(t, http.StatusNotFound, `{"message":"No such company."}`)
	_, err := newTestClient(server, nil).GetCompany(context.Background(), "9")
	assert.True(t, port.IsNotFound(err))
}

func TestResourceClient_NoTokenOmitsAuthorization(t *testing.T) {
	t.Parallel()

	up, server := newUpstream(t, http.StatusOK, `[]`)
	client := newTestClient(server, nil)

	countries, err := client.ListCountries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, countries)
	assert.Empty(t, up.last(t).Header.Get("Authorization"))
}

func TestResourceClient_ContextTokenWins(t *testing.T) {
	t.Parallel()

	up, server := newUpstream(t, http.StatusOK, `[]`)
	client := newTestClient(server, auth.ContextTokenProvider{Fallback: auth.StaticToken("service")})

	_, err := client.ListCurrencies(auth.WithToken(context.Background(), "user-token"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer user-token", up.last(t).Header.Get("Authorization"))

	_, err = client.ListCurrencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer service", up.last(t).Header.Get("Authorization"))
}

func TestResourceClient_RequireTokenFailsBeforeIO(t *testing.T) {
	t.Parallel()

	up, server := newUpstream(t, http.StatusOK, `[]`)
	client := NewResourceClient(ResourceClientConfig{
		BaseURL:      server.URL,
		RequireToken: true,
		HTTPClient:   server.Client(),
	})

	_, err := client.ListVendors(context.Background(), "42")
	require.ErrorIs(t, err, auth.ErrMissingToken)
	assert.Zero(t, up.count())
}

func TestResourceClient_TokenProviderError(t *testing.T) {
	t.Parallel()

	expected := errors.New("vault sealed")
	up, server := newUpstream(t, http.StatusOK, `[]`)
	client := newTestClient(server, auth.TokenProviderFunc(func(context.Context) (string, error) {
		return "", expected
	}))

	_, err := client.ListVendors(context.Background(), "42")
	require.ErrorIs(t, err, expected)
	assert.Zero(t, up.count())
}

func TestResourceClient_MissingParameter(t *testing.T) {
	t.Parallel()

	up, server := newUpstream(t, http.StatusOK, `[]`)
	client := newTestClient(server, nil)

	_, err := client.ListProducts(context.Background(), "  ")
	require.ErrorIs(t, err, port.ErrMissingParameter)

	_, err = client.ListInvoiceReceipts(context.Background(), "3", "")
	require.ErrorIs(t, err, port.ErrMissingParameter)

	assert.Zero(t, up.count())
}

func TestResourceClient_EscapesPathParameters(t *testing.T) {
	t.Parallel()

	up, server := newUpstream(t, http.StatusOK, `[]`)
	_, err := newTestClient(server, nil).ListInvoiceReceipts(context.Background(), " 3 ", "INV/7")
	require.NoError(t, err)
	assert.Equal(t, "/api/branches/3/invoices/INV/7/receipts/", up.last(t).Path)
}

func TestResourceClient_InvalidPayload(t *testing.T) {
	t.Parallel()

	_, server := newUpstream(t, http.StatusOK, `[{"id":1,"name":"Main"},{"id":2}]`)
	_, err := newTestClient(server, nil).ListBranches(context.Background(), "42")

	require.ErrorIs(t, err, port.ErrInvalidPayload)
	require.ErrorIs(t, err, domain.ErrInvalidRecord)
}

func TestResourceClient_DecodeFailure(t *testing.T) {
	t.Parallel()

	_, server := newUpstream(t, http.StatusOK, `{"results":[]}`)
	_, err := newTestClient(server, nil).ListBranches(context.Background(), "42")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestResourceClient_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewResourceClient(ResourceClientConfig{BaseURL: baseURL})
	_, err := client.ListCompanies(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list_companies request failed")
}

func TestResourceClient_CanceledContext(t *testing.T) {
	t.Parallel()

	_, server := newUpstream(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server, nil).ListCompanies(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResourceClient_CreateCompanySendsMultipart(t *testing.T) {
	t.Parallel()

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

	var (
		name        string
		logoType    string
		logoName    string
		contentType string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			name = r.FormValue("name")
			if files := r.MultipartForm.File["logo"]; len(files) == 1 {
				logoType = files[0].Header.Get("Content-Type")
				logoName = files[0].Filename
			}
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"name":"Acme"}`))
	}))
	t.Cleanup(server.Close)

	company, err := newTestClient(server, nil).CreateCompany(context.Background(), domain.CompanyForm{
		Name: "Acme",
		Logo: &domain.Upload{Data: png},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Company{ID: "7", Name: "Acme"}, company)
	assert.Contains(t, contentType, "multipart/form-data")
	assert.Equal(t, "Acme", name)
	assert.Equal(t, "image/png", logoType)
	assert.Equal(t, "logo.png", logoName)
}

func TestResourceClient_CreateCompanyRequiresName(t *testing.T) {
	t.Parallel()

	up, server := newUpstream(t, http.StatusCreated, `{}`)
	_, err := newTestClient(server, nil).CreateCompany(context.Background(), domain.CompanyForm{Email: "a@b.c"})

	require.ErrorIs(t, err, domain.ErrInvalidRecord)
	assert.Zero(t, up.count())
}

func TestResourceClient_UpdateAndDeleteProduct(t *testing.T) {
	t.Parallel()

	up, server := newUpstream(t, http.StatusOK, `{"id":5,"name":"Widget XL","price":"12.50"}`)
	client := newTestClient(server, nil)

	newName := "Widget XL"
	product, err := client.UpdateProduct(context.Background(), "42", "5", domain.ProductPatch{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Widget XL", product.Name)

	req := up.last(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/api/companies/42/products/5/", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	var sent map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, map[string]any{"name": "Widget XL"}, sent)

	up.mu.Lock()
	up.status, up.body = http.StatusNoContent, ""
	up.mu.Unlock()

	require.NoError(t, client.DeleteProduct(context.Background(), "42", "5"))
	req = up.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/companies/42/products/5/", req.Path)
}

func TestResourceClient_CreateUserAndVoucher(t *testing.T) {
	t.Parallel()

	up, server := newUpstream(t, http.StatusCreated, `{"id":11,"username":"amina"}`)
	client := newTestClient(server, nil)

	user, err := client.CreateUser(context.Background(), "42", domain.NewUser{Username: "amina", Email: "amina@example.test", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("11"), user.ID)
	assert.Equal(t, "/api/companies/42/users/", up.last(t).Path)

	up.mu.Lock()
	up.body = `{"id":3,"voucher_type":"journal","date":"2024-05-01"}`
	up.mu.Unlock()

	voucher, err := client.CreateVoucher(context.Background(), "42", domain.NewVoucher{Type: "journal", Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, "journal", voucher.Type)
	assert.Equal(t, http.MethodPost, up.last(t).Method)
	assert.Equal(t, "/api/companies/42/vouchers/", up.last(t).Path)
}

func TestResourceClient_RecordsMetrics(t *testing.T) {
	t.Parallel()

	_, server := newUpstream(t, http.StatusServiceUnavailable, `{"message":"maintenance"}`)
	metrics := NewMetrics(prometheus.NewRegistry())
	client := NewResourceClient(ResourceClientConfig{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Metrics:    metrics,
	})

	_, _ = client.ListAccounts(context.Background(), "42")
	_, _ = client.ListAccounts(context.Background(), "42")

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.requests.WithLabelValues(opListAccounts, "503")))
}

func TestResourceClient_PropagatesTraceContext(t *testing.T) {
	t.Parallel()

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(io.Discard))
	require.NoError(t, err)
	tracer := tracing.NewTracer("bizdash-test", exporter)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	up, server := newUpstream(t, http.StatusOK, `[]`)
	client := NewResourceClient(ResourceClientConfig{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Tracer:     tracer,
	})

	_, err = client.ListCountries(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, up.last(t).Header.Get("Traceparent"))
}

type operationCase struct {
	op   string
	path string
	body string
	call func(context.Context, *ResourceClient) (any, error)
	want any
}

func readOperations() []operationCase {
	return []operationCase{
		{
			op: opListBranches, path: "/api/companies/42/branches/",
			body: `[{"id":1,"name":"Main","company":{"id":42,"name":"Acme"}}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListBranches(ctx, "42") },
			want: []domain.Branch{{ID: "1", Name: "Main", CompanyID: "42"}},
		},
		{
			op: opListCategories, path: "/api/companies/42/categories/",
			body: `[{"id":3,"name":"Tools"},{"id":4,"name":"Hand tools","parent":{"id":3,"name":"Tools"}}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListCategories(ctx, "42") },
			want: []domain.Category{{ID: "3", Name: "Tools"}, {ID: "4", Name: "Hand tools", ParentID: "3"}},
		},
		{
			op: opListProducts, path: "/api/companies/42/products/",
			body: `[{"id":1,"name":"Widget","price":12.5,"cost":"7.25","category":{"id":3,"name":"Tools"},"is_active":true}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListProducts(ctx, "42") },
			want: []domain.Product{{ID: "1", Name: "Widget", Price: "12.5", Cost: "7.25", CategoryID: "3", IsActive: true}},
		},
		{
			op: opListAccounts, path: "/api/companies/42/accounts/",
			body: `[{"id":10,"name":"Cash","code":"1000","account_type":"asset","balance":1520.75}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListAccounts(ctx, "42") },
			want: []domain.Account{{ID: "10", Name: "Cash", Code: "1000", Type: "asset", Balance: "1520.75"}},
		},
		{
			op: opListCompanies, path: "/api/companies/",
			body: `[{"id":42,"name":"Acme","currency":"KES"}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListCompanies(ctx) },
			want: []domain.Company{{ID: "42", Name: "Acme", Currency: "KES"}},
		},
		{
			op: opGetCompany, path: "/api/companies/42/",
			body: `{"id":42,"name":"Acme","country":"KE"}`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.GetCompany(ctx, "42") },
			want: domain.Company{ID: "42", Name: "Acme", Country: "KE"},
		},
		{
			op: opListCountries, path: "/api/countries/",
			body: `[{"code":"KE","name":"Kenya"},{"code":"UG","name":"Uganda"}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListCountries(ctx) },
			want: []domain.Country{{Code: "KE", Name: "Kenya"}, {Code: "UG", Name: "Uganda"}},
		},
		{
			op: opListCurrencies, path: "/api/currencies/",
			body: `[{"code":"KES","name":"Kenyan Shilling","symbol":"KSh"}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListCurrencies(ctx) },
			want: []domain.Currency{{Code: "KES", Name: "Kenyan Shilling", Symbol: "KSh"}},
		},
		{
			op: opListPurchaseOrders, path: "/api/companies/42/purchase-orders/",
			body: `[{"id":7,"order_number":"PO-7","vendor":{"id":2,"name":"Acme Supplies"},"total":99.9,"items":[{"product":1,"quantity":3,"unit_price":"33.30"}]}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListPurchaseOrders(ctx, "42") },
			want: []domain.PurchaseOrder{{
				ID: "7", Number: "PO-7", VendorID: "2", Total: "99.9",
				Items: []domain.OrderItem{{ProductID: "1", Quantity: "3", UnitPrice: "33.30"}},
			}},
		},
		{
			op: opListRequisitionOrders, path: "/api/companies/42/requisitions/",
			body: `[{"id":8,"requisition_number":"RQ-8","branch":1,"status":"draft","items":[{"product":"p-1","quantity":"2.5"}]}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListRequisitionOrders(ctx, "42") },
			want: []domain.RequisitionOrder{{
				ID: "8", Number: "RQ-8", BranchID: "1", Status: "draft",
				Items: []domain.OrderItem{{ProductID: "p-1", Quantity: "2.5"}},
			}},
		},
		{
			op: opListTransferOrders, path: "/api/companies/42/transfers/",
			body: `[{"id":9,"transfer_number":"TR-9","source_branch":1,"destination_branch":{"id":2,"name":"Annex"},"status":"pending"}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListTransferOrders(ctx, "42") },
			want: []domain.TransferOrder{{ID: "9", Number: "TR-9", SourceBranch: "1", DestinationBranch: "2", Status: "pending"}},
		},
		{
			op: opListVendors, path: "/api/companies/42/vendors/",
			body: `[{"id":2,"name":"Acme Supplies","email":"sales@acme.test"}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListVendors(ctx, "42") },
			want: []domain.Vendor{{ID: "2", Name: "Acme Supplies", Email: "sales@acme.test"}},
		},
		{
			op: opListInvoiceReceipts, path: "/api/branches/1/invoices/77/receipts/",
			body: `[{"id":5,"invoice":77,"amount":250,"payment_method":"cash"}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListInvoiceReceipts(ctx, "1", "77") },
			want: []domain.Receipt{{ID: "5", InvoiceID: "77", Amount: "250", Method: "cash"}},
		},
		{
			op: opListVouchers, path: "/api/companies/42/vouchers/",
			body: `[{"id":6,"voucher_type":"journal","date":"2026-03-01","amount":"250.00","entries":[{"account":10,"debit":250},{"account":{"id":11},"credit":"250.00"}]}]`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) { return c.ListVouchers(ctx, "42") },
			want: []domain.Voucher{{
				ID: "6", Type: "journal", Date: "2026-03-01", Amount: "250.00",
				Entries: []domain.VoucherEntry{{AccountID: "10", Debit: "250"}, {AccountID: "11", Credit: "250.00"}},
			}},
		},
	}
}

func writeOperations() []operationCase {
	name := "Widget XL"
	return []operationCase{
		{
			op: opCreateCompany, path: "/api/companies/",
			body: `{"id":43,"name":"Beta"}`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) {
				return c.CreateCompany(ctx, domain.CompanyForm{Name: "Beta"})
			},
			want: domain.Company{ID: "43", Name: "Beta"},
		},
		{
			op: opCreateUser, path: "/api/companies/42/users/",
			body: `{"id":3,"username":"jane","branch":{"id":1,"name":"Main"}}`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) {
				return c.CreateUser(ctx, "42", domain.NewUser{Username: "jane", Email: "jane@acme.test", Password: "s3cret"})
			},
			want: domain.User{ID: "3", Username: "jane", BranchID: "1"},
		},
		{
			op: opCreateVoucher, path: "/api/companies/42/vouchers/",
			body: `{"id":6,"voucher_type":"journal","date":"2026-03-01","amount":250}`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) {
				return c.CreateVoucher(ctx, "42", domain.NewVoucher{Type: "journal", Date: "2026-03-01"})
			},
			want: domain.Voucher{ID: "6", Type: "journal", Date: "2026-03-01", Amount: "250"},
		},
		{
			op: opUpdateProduct, path: "/api/companies/42/products/5/",
			body: `{"id":5,"name":"Widget XL","price":13}`,
			call: func(ctx context.Context, c *ResourceClient) (any, error) {
				return c.UpdateProduct(ctx, "42", "5", domain.ProductPatch{Name: &name})
			},
			want: domain.Product{ID: "5", Name: "Widget XL", Price: "13"},
		},
		{
			op: opDeleteProduct, path: "/api/companies/42/products/5/",
			call: func(ctx context.Context, c *ResourceClient) (any, error) {
				return nil, c.DeleteProduct(ctx, "42", "5")
			},
		},
	}
}

func TestResourceClient_EveryOperationDecodesAndFallsBack(t *testing.T) {
	t.Parallel()

	cases := append(readOperations(), writeOperations()...)
	covered := map[string]bool{}
	for _, tc := range cases {
		covered[tc.op] = true
	}
	for op := range endpoints {
		require.True(t, covered[op], "operation %s has no case", op)
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.op, func(t *testing.T) {
			t.Parallel()

			t.Run("decodes", func(t *testing.T) {
				up, server := newUpstream(t, http.StatusOK, tc.body)
				got, err := tc.call(context.Background(), newTestClient(server, auth.StaticToken("tok-1")))
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)

				req := up.last(t)
				assert.Equal(t, endpoints[tc.op].method, req.Method)
				assert.Equal(t, tc.path, req.Path)
				assert.Equal(t, "Bearer tok-1", req.Header.Get("Authorization"))
			})

			t.Run("falls back", func(t *testing.T) {
				_, server := newUpstream(t, http.StatusInternalServerError, `<html>upstream exploded</html>`)
				_, err := tc.call(context.Background(), newTestClient(server, nil))
				require.Error(t, err)
				assert.Equal(t, endpoints[tc.op].fallback, err.Error())

				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tc.op, apiErr.Operation)
				assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
			})
		})
	}
}
