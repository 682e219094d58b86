package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Product is read from the catalog store. Prices keep the stored order,
// which CurrentPrice relies on for its tie-break.
type Product struct {
	ID       int64
	Name     string
	SKU      string
	Quantity int // stock on hand, owned by catalog management
	Category Category
	Prices   []PriceRecord
}

type PriceRecord struct {
	ProductID      int64
	CurrencyCode   string
	Price          decimal.Decimal
	EffectiveFrom  time.Time
	EffectiveUntil time.Time
}

type TaxKind string

const (
	TaxHST TaxKind = "HST" // Harmonized Sales Tax
	TaxPST TaxKind = "PST" // Provincial Sales Tax
	TaxGST TaxKind = "GST" // Goods and Services Tax
)

func (k TaxKind) Valid() bool {
	switch k {
	case TaxHST, TaxPST, TaxGST:
		return true
	}
	return false
}

type TaxRecord struct {
	ID          int64           `db:"id" json:"id"`
	CountryCode string          `db:"country_code" json:"countryCode"`
	Region      string          `db:"region" json:"region"`
	Percentage  decimal.Decimal `db:"percentage" json:"percentage"`
	Kind        TaxKind         `db:"tax_type" json:"taxType"`
	Name        string          `db:"name" json:"name"`
}
