package services

import (
	"context"

	"storecart/internal/domain"
	"storecart/internal/repos"
)

// CatalogStore finds products. A missing product is nil with a nil error.
type CatalogStore interface {
	FindProductByID(ctx context.Context, id int64) (*domain.Product, error)
}

type TaxStore interface {
	FindByRegionAndCountry(ctx context.Context, region, country string) ([]domain.TaxRecord, error)
}

// CartStore loads and persists carts. A missing cart is nil with a nil error.
// Save assigns the id on first save.
type CartStore interface {
	FindCartByID(ctx context.Context, id int64) (*domain.Cart, error)
	Save(ctx context.Context, c *domain.Cart) error
}

type CurrencyResolver interface {
	Resolve(currency string) (country string, ok bool)
}

// Stores are the collaborators available inside one unit of work.
type Stores struct {
	Catalog CatalogStore
	Taxes   TaxStore
	Carts   CartStore
}

// UnitOfWork runs fn atomically: either everything fn wrote is kept or,
// when fn fails, none of it is.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(Stores) error) error
}

// SQLUnitOfWork runs units of work in a database transaction.
type SQLUnitOfWork struct{ store *repos.Store }

func NewSQLUnitOfWork(store *repos.Store) *SQLUnitOfWork { return &SQLUnitOfWork{store: store} }

func (u *SQLUnitOfWork) Do(ctx context.Context, fn func(Stores) error) error {
	return u.store.InTx(ctx, func(tx *repos.Tx) error {
		return fn(Stores{Catalog: tx.Products, Taxes: tx.Taxes, Carts: tx.Carts})
	})
}
