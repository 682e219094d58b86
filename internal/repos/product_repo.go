package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"storecart/internal/domain"
)

type ProductRepo struct{ db sqlx.ExtContext }

// NewProductRepo accepts a *sqlx.DB or a *sqlx.Tx.
func NewProductRepo(db sqlx.ExtContext) *ProductRepo { return &ProductRepo{db: db} }

type productRow struct {
	ID           int64         `db:"id"`
	Name         string        `db:"name"`
	SKU          string        `db:"sku"`
	Quantity     int           `db:"quantity"`
	CategoryID   sql.NullInt64 `db:"category_id"`
	CategoryName string        `db:"category_name"`
}

type priceRow struct {
	ProductID     int64           `db:"product_id"`
	CurrencyCode  string          `db:"currency_code"`
	Price         decimal.Decimal `db:"price"`
	EffectiveDate string          `db:"effective_date"`
	ExpiryDate    string          `db:"expiry_date"`
}

const productColumns = `
    p.id, p.name, p.sku, p.quantity, p.category_id,
    COALESCE(c.name,'') AS category_name
  FROM products p
  LEFT JOIN categories c ON c.id = p.category_id`

// FindProductByID returns nil, nil when no product has id.
func (r *ProductRepo) FindProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	var row productRow
	err := sqlx.GetContext(ctx, r.db, &row, `SELECT`+productColumns+` WHERE p.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	ps, err := hydrate(ctx, r.db, []productRow{row})
	if err != nil {
		return nil, err
	}
	return &ps[0], nil
}

// List returns every product with its prices, ordered by id.
func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows := []productRow{}
	if err := sqlx.SelectContext(ctx, r.db, &rows, `SELECT`+productColumns+` ORDER BY p.id`); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return hydrate(ctx, r.db, rows)
}

// Create inserts p and its prices. A zero p.ID is assigned by the database.
func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	var catID sql.NullInt64
	if p.Category.ID != 0 {
		catID = sql.NullInt64{Int64: p.Category.ID, Valid: true}
	}
	var (
		res sql.Result
		err error
	)
	if p.ID == 0 {
		res, err = r.db.ExecContext(ctx, `
			INSERT INTO products(name, sku, quantity, category_id) VALUES(?,?,?,?)
		`, p.Name, p.SKU, p.Quantity, catID)
	} else {
		res, err = r.db.ExecContext(ctx, `
			INSERT INTO products(id, name, sku, quantity, category_id) VALUES(?,?,?,?,?)
		`, p.ID, p.Name, p.SKU, p.Quantity, catID)
	}
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	if p.ID == 0 {
		if p.ID, err = res.LastInsertId(); err != nil {
			return err
		}
	}
	for i := range p.Prices {
		pr := &p.Prices[i]
		pr.ProductID = p.ID
		if _, err := r.db.ExecContext(ctx, `
			INSERT INTO price_info(product_id, currency_code, price, effective_date, expiry_date)
			VALUES(?,?,?,?,?)
		`, p.ID, pr.CurrencyCode, pr.Price, formatTime(pr.EffectiveFrom), formatTime(pr.EffectiveUntil)); err != nil {
			return fmt.Errorf("insert price for product %d: %w", p.ID, err)
		}
	}
	return nil
}

func (r *ProductRepo) SKUExists(ctx context.Context, sku string) (bool, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.db, &n, `SELECT COUNT(*) FROM products WHERE sku = ?`, sku); err != nil {
		return false, err
	}
	return n > 0, nil
}

// findProducts loads the products with the given ids keyed by id. Missing ids
// are absent from the map.
func findProducts(ctx context.Context, q sqlx.ExtContext, ids []int64) (map[int64]domain.Product, error) {
	out := map[int64]domain.Product{}
	if len(ids) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`SELECT`+productColumns+` WHERE p.id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	rows := []productRow{}
	if err := sqlx.SelectContext(ctx, q, &rows, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	ps, err := hydrate(ctx, q, rows)
	if err != nil {
		return nil, err
	}
	for _, p := range ps {
		out[p.ID] = p
	}
	return out, nil
}

// hydrate attaches prices to rows in insertion order, which is the order
// CurrentPrice uses to break ties.
func hydrate(ctx context.Context, q sqlx.ExtContext, rows []productRow) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	query, args, err := sqlx.In(`
		SELECT product_id, currency_code, price, effective_date, expiry_date
		FROM price_info
		WHERE product_id IN (?)
		ORDER BY product_id, id
	`, ids)
	if err != nil {
		return nil, err
	}
	prices := []priceRow{}
	if err := sqlx.SelectContext(ctx, q, &prices, q.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get prices: %w", err)
	}
	byProduct := map[int64][]domain.PriceRecord{}
	for _, pr := range prices {
		from, err := parseTime(pr.EffectiveDate)
		if err != nil {
			return nil, fmt.Errorf("price for product %d: %w", pr.ProductID, err)
		}
		until, err := parseTime(pr.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("price for product %d: %w", pr.ProductID, err)
		}
		byProduct[pr.ProductID] = append(byProduct[pr.ProductID], domain.PriceRecord{
			ProductID:      pr.ProductID,
			CurrencyCode:   pr.CurrencyCode,
			Price:          pr.Price,
			EffectiveFrom:  from,
			EffectiveUntil: until,
		})
	}
	for _, r := range rows {
		out = append(out, domain.Product{
			ID:       r.ID,
			Name:     r.Name,
			SKU:      r.SKU,
			Quantity: r.Quantity,
			Category: domain.Category{ID: r.CategoryID.Int64, Name: r.CategoryName},
			Prices:   byProduct[r.ID],
		})
	}
	return out, nil
}

// Windows keep sub-second precision.
func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

func parseTime(s string) (time.Time, error) { return time.Parse(time.RFC3339Nano, s) }
