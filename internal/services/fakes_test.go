package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"storecart/internal/domain"
	"storecart/internal/locale"
	"storecart/internal/services"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeUoW struct {
	stores services.Stores
	calls  int
}

func (f *fakeUoW) Do(_ context.Context, fn func(services.Stores) error) error {
	f.calls++
	return fn(f.stores)
}

type fakeCatalog struct {
	products map[int64]domain.Product
}

func (f *fakeCatalog) FindProductByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type fakeTaxes struct {
	byRegion map[string][]domain.TaxRecord
	calls    int
}

func (f *fakeTaxes) FindByRegionAndCountry(_ context.Context, region, country string) ([]domain.TaxRecord, error) {
	f.calls++
	var out []domain.TaxRecord
	for _, t := range f.byRegion[region] {
		if t.CountryCode == country {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeCarts struct {
	carts  map[int64]*domain.Cart
	saves  int
	nextID int64
}

func (f *fakeCarts) FindCartByID(_ context.Context, id int64) (*domain.Cart, error) {
	return f.carts[id], nil
}

func (f *fakeCarts) Save(_ context.Context, c *domain.Cart) error {
	f.saves++
	if c.ID == 0 {
		f.nextID++
		c.ID = f.nextID
	}
	c.Version++
	f.carts[c.ID] = c
	return nil
}

type fixture struct {
	svc     *services.CartService
	uow     *fakeUoW
	catalog *fakeCatalog
	taxes   *fakeTaxes
	carts   *fakeCarts
}

func cadProduct(id int64, name, amount string) domain.Product {
	p := domain.Product{ID: id, Name: name, SKU: name + "-SKU"}
	if amount != "" {
		p.Prices = []domain.PriceRecord{{
			ProductID:      id,
			CurrencyCode:   "CAD",
			Price:          decimal.RequireFromString(amount),
			EffectiveFrom:  now.AddDate(-1, 0, 0),
			EffectiveUntil: now.AddDate(1, 0, 0),
		}}
	}
	return p
}

func tax(region string, kind domain.TaxKind, pct, name string) domain.TaxRecord {
	return domain.TaxRecord{CountryCode: "CA", Region: region, Kind: kind, Percentage: decimal.RequireFromString(pct), Name: name}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	resolver, err := locale.NewResolver([]string{"CA"})
	require.NoError(t, err)

	f := &fixture{
		catalog: &fakeCatalog{products: map[int64]domain.Product{
			1: cadProduct(1, "A", "29.99"),
			2: cadProduct(2, "B", "49.99"),
			3: cadProduct(3, "Unpriced", ""),
		}},
		taxes: &fakeTaxes{byRegion: map[string][]domain.TaxRecord{
			"ON": {tax("ON", domain.TaxHST, "13", "Ontario HST")},
			"BC": {tax("BC", domain.TaxGST, "5", "Federal GST"), tax("BC", domain.TaxPST, "7", "British Columbia PST")},
		}},
		carts: &fakeCarts{carts: map[int64]*domain.Cart{}},
	}
	f.uow = &fakeUoW{stores: services.Stores{Catalog: f.catalog, Taxes: f.taxes, Carts: f.carts}}
	f.svc = services.NewCartService(f.uow, resolver)
	f.svc.Now = func() time.Time { return now }
	return f
}

func int64p(v int64) *int64 { return &v }
