package services

import (
	"time"

	"storecart/internal/domain"
)

// ToCartResponse maps c to its wire view. Unit prices are looked up at asOf;
// the subtotal and taxes are taken from c as stored.
func ToCartResponse(c *domain.Cart, asOf time.Time, success bool, message string) CartResponse {
	resp := CartResponse{
		CartID:       c.ID,
		TotalItems:   c.TotalItems(),
		Subtotal:     c.Subtotal,
		CurrencyCode: c.Currency,
		Region:       c.Region,
		Items:        []CartItemResponse{},
		TaxBreakdown: []TaxBreakdownResponse{},
		Message:      message,
		Success:      success,
	}
	for _, p := range c.Products() {
		item := CartItemResponse{
			ProductID:    p.ID,
			ProductName:  p.Name,
			SKU:          p.SKU,
			Quantity:     c.QuantityOf(p.ID),
			CurrencyCode: c.Currency,
		}
		if price, ok := domain.CurrentPrice(p, c.Currency, asOf); ok {
			item.Price = &price
		}
		resp.Items = append(resp.Items, item)
	}
	for _, t := range c.Taxes() {
		resp.TaxBreakdown = append(resp.TaxBreakdown, TaxBreakdownResponse{
			TaxType:    string(t.Kind),
			Percentage: t.Percentage,
			Name:       t.Name,
		})
	}
	return resp
}

func toProductResponse(p domain.Product) ProductResponse {
	out := ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Quantity:     p.Quantity,
		CategoryName: p.Category.Name,
		Prices:       []PricingInfo{},
	}
	for _, pr := range p.Prices {
		out.Prices = append(out.Prices, PricingInfo{CurrencyCode: pr.CurrencyCode, Price: pr.Price})
	}
	return out
}
