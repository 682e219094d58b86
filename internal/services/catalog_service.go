package services

import (
	"context"
	"fmt"
	"strings"

	"storecart/internal/domain"
	"storecart/internal/repos"
	"storecart/internal/validate"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
	Store *repos.Store
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo, store *repos.Store) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods, Store: store}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.Cats.List(ctx)
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]ProductResponse, error) {
	ps, err := s.Prods.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// CreateProduct adds a product and its price records in one transaction.
func (s *CatalogService) CreateProduct(ctx context.Context, req CreateProductRequest) (ProductResponse, error) {
	p, err := newProduct(req)
	if err != nil {
		return ProductResponse{}, err
	}
	err = s.Store.InTx(ctx, func(tx *repos.Tx) error {
		if p.Category.ID != 0 {
			cat, err := tx.Categories.Get(ctx, p.Category.ID)
			if err != nil {
				return err
			}
			if cat == nil {
				return fmt.Errorf("%w: unknown category %d", domain.ErrInvalidProduct, p.Category.ID)
			}
			p.Category = *cat
		}
		exists, err := tx.Products.SKUExists(ctx, p.SKU)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: sku %s already exists", domain.ErrInvalidProduct, p.SKU)
		}
		return tx.Products.Create(ctx, &p)
	})
	if err != nil {
		return ProductResponse{}, err
	}
	return toProductResponse(p), nil
}

func newProduct(req CreateProductRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	sku := strings.TrimSpace(req.SKU)
	switch {
	case name == "":
		return domain.Product{}, fmt.Errorf("%w: name is required", domain.ErrInvalidProduct)
	case sku == "":
		return domain.Product{}, fmt.Errorf("%w: sku is required", domain.ErrInvalidProduct)
	case req.Quantity < 0:
		return domain.Product{}, fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidProduct)
	}
	p := domain.Product{Name: name, SKU: sku, Quantity: req.Quantity, Category: domain.Category{ID: req.CategoryID}}
	for i, in := range req.Prices {
		cur, ok := validate.Currency(in.CurrencyCode)
		if !ok {
			return domain.Product{}, fmt.Errorf("%w: price %d: bad currency %q", domain.ErrInvalidProduct, i, in.CurrencyCode)
		}
		if in.Price.IsNegative() {
			return domain.Product{}, fmt.Errorf("%w: price %d is negative", domain.ErrInvalidProduct, i)
		}
		if in.EffectiveDate.IsZero() || in.ExpiryDate.IsZero() || in.ExpiryDate.Before(in.EffectiveDate) {
			return domain.Product{}, fmt.Errorf("%w: price %d has an invalid window", domain.ErrInvalidProduct, i)
		}
		p.Prices = append(p.Prices, domain.PriceRecord{
			CurrencyCode:   cur,
			Price:          in.Price,
			EffectiveFrom:  in.EffectiveDate.UTC(),
			EffectiveUntil: in.ExpiryDate.UTC(),
		})
	}
	return p, nil
}
