package repos

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"storecart/internal/domain"
)

type CartRepo struct{ db sqlx.ExtContext }

func NewCartRepo(db sqlx.ExtContext) *CartRepo { return &CartRepo{db: db} }

type cartRow struct {
	ID        int64           `db:"id"`
	Region    string          `db:"region"`
	Currency  string          `db:"currency_code"`
	Subtotal  decimal.Decimal `db:"subtotal"`
	TaxesJSON string          `db:"taxes_json"`
	Version   int             `db:"version"`
}

type cartItemRow struct {
	ProductID int64 `db:"product_id"`
	Quantity  int   `db:"quantity"`
}

// FindCartByID loads the cart, its lines with their products, and the tax
// snapshot stored at the last save. It returns nil, nil when id is unknown.
func (r *CartRepo) FindCartByID(ctx context.Context, id int64) (*domain.Cart, error) {
	var row cartRow
	err := sqlx.GetContext(ctx, r.db, &row, `
		SELECT id, region, currency_code, subtotal, taxes_json, version
		FROM carts WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart %d: %w", id, err)
	}

	items := []cartItemRow{}
	if err := sqlx.SelectContext(ctx, r.db, &items, `
		SELECT product_id, quantity FROM cart_items
		WHERE cart_id = ?
		ORDER BY position
	`, id); err != nil {
		return nil, fmt.Errorf("get cart %d items: %w", id, err)
	}
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ProductID
	}
	products, err := findProducts(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	lines := make([]domain.CartLine, 0, len(items))
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok {
			return nil, fmt.Errorf("cart %d references missing product %d", id, it.ProductID)
		}
		lines = append(lines, domain.CartLine{Product: p, Quantity: it.Quantity})
	}

	var taxes []domain.TaxRecord
	if err := json.Unmarshal([]byte(row.TaxesJSON), &taxes); err != nil {
		return nil, fmt.Errorf("cart %d taxes: %w", id, err)
	}
	return domain.RestoreCart(row.ID, row.Region, row.Currency, row.Subtotal, row.Version, lines, taxes), nil
}

// Save inserts c when it has no id yet, otherwise updates it if the stored
// version still equals c.Version. On success c carries the new id and version.
func (r *CartRepo) Save(ctx context.Context, c *domain.Cart) error {
	taxes := c.Taxes()
	if taxes == nil {
		taxes = []domain.TaxRecord{}
	}
	taxesJSON, err := json.Marshal(taxes)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)

	if c.ID == 0 {
		res, err := r.db.ExecContext(ctx, `
			INSERT INTO carts(region, currency_code, subtotal, taxes_json, version, created_at, updated_at)
			VALUES(?,?,?,?,1,?,?)
		`, c.Region, c.Currency, c.Subtotal, string(taxesJSON), now, now)
		if err != nil {
			return fmt.Errorf("insert cart: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		c.ID, c.Version = id, 1
	} else {
		res, err := r.db.ExecContext(ctx, `
			UPDATE carts
			SET region = ?, currency_code = ?, subtotal = ?, taxes_json = ?,
			    version = version + 1, updated_at = ?
			WHERE id = ? AND version = ?
		`, c.Region, c.Currency, c.Subtotal, string(taxesJSON), now, c.ID, c.Version)
		if err != nil {
			return fmt.Errorf("update cart %d: %w", c.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: cart %d at version %d", domain.ErrCartConflict, c.ID, c.Version)
		}
		c.Version++
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = ?`, c.ID); err != nil {
		return fmt.Errorf("clear cart %d items: %w", c.ID, err)
	}
	for i, p := range c.Products() {
		if _, err := r.db.ExecContext(ctx, `
			INSERT INTO cart_items(cart_id, product_id, quantity, position) VALUES(?,?,?,?)
		`, c.ID, p.ID, c.QuantityOf(p.ID), i); err != nil {
			return fmt.Errorf("insert cart %d item %d: %w", c.ID, p.ID, err)
		}
	}
	return nil
}
