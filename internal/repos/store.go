package repos

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Store runs units of work against one database.
type Store struct{ db *sqlx.DB }

func NewStore(db *sqlx.DB) *Store { return &Store{db: db} }

// Tx exposes the repositories bound to one transaction.
type Tx struct {
	Products   *ProductRepo
	Categories *CategoryRepo
	Taxes      *TaxRepo
	Carts      *CartRepo
}

// InTx runs fn in a transaction. The transaction commits when fn returns nil
// and rolls back on error or panic.
func (s *Store) InTx(ctx context.Context, fn func(*Tx) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(&Tx{
		Products:   NewProductRepo(tx),
		Categories: NewCategoryRepo(tx),
		Taxes:      NewTaxRepo(tx),
		Carts:      NewCartRepo(tx),
	}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
