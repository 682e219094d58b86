package services

import (
	"context"
	"fmt"
	"time"

	"storecart/internal/domain"
)

type CartService struct {
	UoW      UnitOfWork
	Currency CurrencyResolver
	Now      func() time.Time
}

func NewCartService(uow UnitOfWork, currency CurrencyResolver) *CartService {
	return &CartService{UoW: uow, Currency: currency, Now: time.Now}
}

// AddProductToCart sets the quantity of a product in a cart, creating the cart
// when req.CartID is nil, then reprices the cart, snapshots its taxes and
// saves it. The whole call is one unit of work: on any error nothing is
// persisted and the error is returned as is.
//
// Quantities are overwritten, not summed: adding a product already in the
// cart replaces its quantity with req.Quantity.
func (s *CartService) AddProductToCart(ctx context.Context, req AddToCartRequest) (CartResponse, error) {
	if req.Quantity <= 0 {
		return CartResponse{}, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, req.Quantity)
	}
	now := s.Now().UTC()

	var resp CartResponse
	err := s.UoW.Do(ctx, func(st Stores) error {
		cart, err := s.loadOrCreate(ctx, st.Carts, req)
		if err != nil {
			return err
		}

		product, err := st.Catalog.FindProductByID(ctx, req.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: id %d", domain.ErrProductNotFound, req.ProductID)
		}

		cart.AddProduct(*product, req.Quantity)
		cart.RecomputeSubtotal(now)

		taxes, err := NewTaxService(s.Currency, st.Taxes).TaxesForRegion(ctx, cart.Region, cart.Currency)
		if err != nil {
			return err
		}
		cart.SetTaxes(taxes)

		if err := st.Carts.Save(ctx, cart); err != nil {
			return err
		}
		resp = ToCartResponse(cart, now, true, "Product added to cart")
		return nil
	})
	if err != nil {
		return CartResponse{}, err
	}
	return resp, nil
}

// loadOrCreate keeps the stored region and currency of an existing cart even
// when the request names others. The response reports the stored values.
func (s *CartService) loadOrCreate(ctx context.Context, carts CartStore, req AddToCartRequest) (*domain.Cart, error) {
	if req.CartID == nil {
		return domain.NewCart(req.Region, req.CurrencyCode), nil
	}
	cart, err := carts.FindCartByID(ctx, *req.CartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrCartNotFound, *req.CartID)
	}
	return cart, nil
}

// GetCart returns the stored view of a cart. Taxes come from the snapshot
// taken at the last change; unit prices are current.
func (s *CartService) GetCart(ctx context.Context, id int64) (CartResponse, error) {
	var resp CartResponse
	err := s.UoW.Do(ctx, func(st Stores) error {
		cart, err := st.Carts.FindCartByID(ctx, id)
		if err != nil {
			return err
		}
		if cart == nil {
			return fmt.Errorf("%w: id %d", domain.ErrCartNotFound, id)
		}
		resp = ToCartResponse(cart, s.Now().UTC(), true, "")
		return nil
	})
	return resp, err
}
