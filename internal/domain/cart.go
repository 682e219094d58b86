package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart holds the selected products and their quantities. The quantity map and
// the product list always describe the same set of ids; AddProduct is the only
// mutator of either.
type Cart struct {
	ID       int64
	Region   string
	Currency string
	Subtotal decimal.Decimal
	// Version is bumped on every update and checked by the cart store.
	Version int

	products   []Product
	quantities map[int64]int
	taxes      []TaxRecord
}

func NewCart(region, currency string) *Cart {
	return &Cart{
		Region:     region,
		Currency:   currency,
		Subtotal:   decimal.Zero,
		quantities: map[int64]int{},
	}
}

// CartLine pairs a product with its quantity when a cart is rebuilt from storage.
type CartLine struct {
	Product  Product
	Quantity int
}

// RestoreCart rebuilds a persisted cart. Lines keep their order.
func RestoreCart(id int64, region, currency string, subtotal decimal.Decimal, version int, lines []CartLine, taxes []TaxRecord) *Cart {
	c := NewCart(region, currency)
	c.ID = id
	c.Subtotal = subtotal
	c.Version = version
	for _, l := range lines {
		c.AddProduct(l.Product, l.Quantity)
	}
	c.SetTaxes(taxes)
	return c
}

// AddProduct sets the quantity for p, replacing any earlier quantity for the
// same product id. Repeated calls do not accumulate.
func (c *Cart) AddProduct(p Product, quantity int) {
	if _, ok := c.quantities[p.ID]; ok {
		for i := range c.products {
			if c.products[i].ID == p.ID {
				c.products[i] = p
				break
			}
		}
	} else {
		c.products = append(c.products, p)
	}
	c.quantities[p.ID] = quantity
}

func (c *Cart) QuantityOf(productID int64) int {
	return c.quantities[productID]
}

// Products returns the cart's products in the order they were first added.
func (c *Cart) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Cart) TotalItems() int {
	n := 0
	for _, q := range c.quantities {
		n += q
	}
	return n
}

// RecomputeSubtotal replaces Subtotal with the sum of current unit price times
// quantity in the cart's currency. Products without a current price add nothing.
func (c *Cart) RecomputeSubtotal(asOf time.Time) {
	sum := decimal.Zero
	for _, p := range c.products {
		price, ok := CurrentPrice(p, c.Currency, asOf)
		if !ok {
			continue
		}
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(c.quantities[p.ID]))))
	}
	c.Subtotal = sum
}

// Taxes is the snapshot taken at the last mutation.
func (c *Cart) Taxes() []TaxRecord {
	out := make([]TaxRecord, len(c.taxes))
	copy(out, c.taxes)
	return out
}

func (c *Cart) SetTaxes(taxes []TaxRecord) {
	c.taxes = append([]TaxRecord(nil), taxes...)
}
