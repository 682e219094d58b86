package services

import (
	"context"
	"fmt"

	"storecart/internal/domain"
)

type TaxService struct {
	Currency CurrencyResolver
	Taxes    TaxStore
}

func NewTaxService(currency CurrencyResolver, taxes TaxStore) *TaxService {
	return &TaxService{Currency: currency, Taxes: taxes}
}

// TaxesForRegion returns the taxes registered for region in the country that
// uses currency, in registration order. An unsupported currency fails with
// domain.ErrInvalidCurrency without touching the store; a region without
// taxes yields an empty slice.
func (s *TaxService) TaxesForRegion(ctx context.Context, region, currency string) ([]domain.TaxRecord, error) {
	country, ok := s.Currency.Resolve(currency)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCurrency, currency)
	}
	taxes, err := s.Taxes.FindByRegionAndCountry(ctx, region, country)
	if err != nil {
		return nil, err
	}
	if taxes == nil {
		taxes = []domain.TaxRecord{}
	}
	return taxes, nil
}
