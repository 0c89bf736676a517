package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"bizdash/internal/modules/dashboard/application/port"
	"bizdash/internal/modules/dashboard/application/store"
	"bizdash/internal/modules/dashboard/domain"
)

// OrderPage is the data a purchase-order form needs.
type OrderPage struct {
	Vendors  []domain.Vendor  `json:"vendors"`
	Products []domain.Product `json:"products"`
}

// TransferRow is a transfer order with its branch ids resolved for display. Unknown ids
// resolve to an empty name.
type TransferRow struct {
	domain.TransferOrder
	SourceBranchName      string `json:"source_branch_name"`
	DestinationBranchName string `json:"destination_branch_name"`
}

type TransfersPage struct {
	Branches  []domain.Branch `json:"branches"`
	Transfers []TransferRow   `json:"transfers"`
}

type CompanySetupPage struct {
	Countries  []domain.Country  `json:"countries"`
	Currencies []domain.Currency `json:"currencies"`
}

// PagesUseCase composes resource calls for dashboard pages and keeps the reference store
// current.
type PagesUseCase struct {
	fetcher port.ReferenceFetcher
	store   *store.ReferenceStore
}

func NewPagesUseCase(fetcher port.ReferenceFetcher, refs *store.ReferenceStore) *PagesUseCase {
	if refs == nil {
		refs = store.NewReferenceStore()
	}
	return &PagesUseCase{fetcher: fetcher, store: refs}
}

func (uc *PagesUseCase) Store() *store.ReferenceStore { return uc.store }

// LoadOrderPage fetches vendors and products concurrently. The first failure cancels the
// other call and is returned.
func (uc *PagesUseCase) LoadOrderPage(ctx context.Context, companyID string) (*OrderPage, error) {
	companyID = strings.TrimSpace(companyID)
	page := &OrderPage{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vendors, err := uc.fetcher.ListVendors(gctx, companyID)
		if err != nil {
			return err
		}
		page.Vendors = vendors
		return nil
	})
	g.Go(func() error {
		products, err := uc.fetcher.ListProducts(gctx, companyID)
		if err != nil {
			return err
		}
		page.Products = products
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load order page: %w", err)
	}

	uc.store.For(companyID).Vendors.Update(page.Vendors)
	return page, nil
}

// LoadTransfersPage fetches branches and transfers concurrently, publishes the branches to
// the company's reference collection, and resolves each transfer against the branches this
// call fetched. A concurrent refresh cannot change the names in the returned page.
func (uc *PagesUseCase) LoadTransfersPage(ctx context.Context, companyID string) (*TransfersPage, error) {
	companyID = strings.TrimSpace(companyID)
	var (
		branches  []domain.Branch
		transfers []domain.TransferOrder
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		branches, err = uc.fetcher.ListBranches(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		transfers, err = uc.fetcher.ListTransferOrders(gctx, companyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load transfers page: %w", err)
	}

	fetched := store.NewCollection[domain.Branch](store.KindBranches)
	fetched.Update(branches)
	uc.store.For(companyID).Branches.Update(branches)
	return &TransfersPage{Branches: branches, Transfers: resolveTransfers(fetched, transfers)}, nil
}

// ResolveTransfers annotates transfers with branch names from the company's current
// reference collection.
func (uc *PagesUseCase) ResolveTransfers(companyID string, transfers []domain.TransferOrder) []TransferRow {
	return resolveTransfers(uc.store.For(companyID).Branches, transfers)
}

func resolveTransfers(branches *store.Collection[domain.Branch], transfers []domain.TransferOrder) []TransferRow {
	name := func(id domain.ID) string {
		branch, ok := branches.Resolve(id)
		if !ok {
			return ""
		}
		return branch.Name
	}
	rows := make([]TransferRow, 0, len(transfers))
	for _, transfer := range transfers {
		rows = append(rows, TransferRow{
			TransferOrder:         transfer,
			SourceBranchName:      name(transfer.SourceBranch),
			DestinationBranchName: name(transfer.DestinationBranch),
		})
	}
	return rows
}

// RefreshBranches reloads the company's branches into the reference store.
func (uc *PagesUseCase) RefreshBranches(ctx context.Context, companyID string) ([]domain.Branch, error) {
	companyID = strings.TrimSpace(companyID)
	branches, err := uc.fetcher.ListBranches(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("refresh branches: %w", err)
	}
	uc.store.For(companyID).Branches.Update(branches)
	slog.Info("reference branches refreshed", slog.String("companyId", companyID), slog.Int("count", len(branches)))
	return branches, nil
}

func (uc *PagesUseCase) LoadCompanySetupPage(ctx context.Context) (*CompanySetupPage, error) {
	page := &CompanySetupPage{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page.Countries, err = uc.fetcher.ListCountries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		page.Currencies, err = uc.fetcher.ListCurrencies(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load company setup page: %w", err)
	}
	return page, nil
}
