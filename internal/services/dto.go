package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddToCartRequest is the body of POST /api/carts. A nil CartID creates a cart.
type AddToCartRequest struct {
	CartID       *int64 `json:"cartId"`
	ProductID    int64  `json:"productId"`
	Quantity     int    `json:"quantity"`
	Region       string `json:"region"`
	CurrencyCode string `json:"currencyCode"`
}

type CartResponse struct {
	CartID       int64                  `json:"cartId"`
	TotalItems   int                    `json:"totalItems"` // sum of quantities
	Subtotal     decimal.Decimal        `json:"subtotal"`
	CurrencyCode string                 `json:"currencyCode"`
	Region       string                 `json:"region"`
	Items        []CartItemResponse     `json:"items"`
	TaxBreakdown []TaxBreakdownResponse `json:"taxBreakdown"`
	Message      string                 `json:"message,omitempty"`
	Success      bool                   `json:"success"`
}

type CartItemResponse struct {
	ProductID    int64            `json:"productId"`
	ProductName  string           `json:"productName"`
	SKU          string           `json:"sku"`
	Quantity     int              `json:"quantity"`
	Price        *decimal.Decimal `json:"price,omitempty"` // nil without a current price
	CurrencyCode string           `json:"currencyCode"`
}

type TaxBreakdownResponse struct {
	TaxType    string          `json:"taxType"`
	Percentage decimal.Decimal `json:"percentage"`
	Name       string          `json:"name"`
}

// ProductResponse omits price windows.
type ProductResponse struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	SKU          string        `json:"sku"`
	Quantity     int           `json:"quantity"`
	CategoryName string        `json:"categoryName"`
	Prices       []PricingInfo `json:"prices"`
}

type PricingInfo struct {
	CurrencyCode string          `json:"currencyCode"`
	Price        decimal.Decimal `json:"price"`
}

type CreateProductRequest struct {
	Name       string       `json:"name"`
	SKU        string       `json:"sku"`
	Quantity   int          `json:"quantity"`
	CategoryID int64        `json:"categoryId"`
	Prices     []PriceInput `json:"prices"`
}

type PriceInput struct {
	CurrencyCode  string          `json:"currencyCode"`
	Price         decimal.Decimal `json:"price"`
	EffectiveDate time.Time       `json:"effectiveDate"`
	ExpiryDate    time.Time       `json:"expiryDate"`
}
