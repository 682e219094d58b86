package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "storecart/internal/log"
	"storecart/internal/services"
	"storecart/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

// Add handles POST /api/carts.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req services.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.CartID != nil && *req.CartID < 1 {
		applog.Security(c, "validation.fail", map[string]any{"field": "cartId"})
		return fail(c, fiber.StatusBadRequest, "cartId must be a positive integer")
	}
	if req.ProductID < 1 {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return fail(c, fiber.StatusBadRequest, "productId must be a positive integer")
	}
	region, ok := validate.Region(req.Region)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "region", "value": req.Region})
		return fail(c, fiber.StatusBadRequest, "enter a valid region code, e.g. ON")
	}
	currency, ok := validate.Currency(req.CurrencyCode)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "currencyCode", "value": req.CurrencyCode})
		return fail(c, fiber.StatusBadRequest, "enter a valid currency code, e.g. CAD")
	}
	req.Region, req.CurrencyCode = region, currency

	resp, err := h.Cart.AddProductToCart(c.UserContext(), req)
	if err != nil {
		return failFor(c, "cart.add", err)
	}
	// An existing cart keeps its stored region and currency.
	if resp.Region != region || resp.CurrencyCode != currency {
		applog.Warn(c, "cart.region_currency_mismatch", map[string]any{
			"cart_id":          resp.CartID,
			"cart_region":      resp.Region,
			"cart_currency":    resp.CurrencyCode,
			"request_region":   region,
			"request_currency": currency,
		})
	}
	applog.Audit(c, "cart.product_added", map[string]any{
		"cart_id":    resp.CartID,
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
		"subtotal":   resp.Subtotal.String(),
	})
	return c.JSON(resp)
}

// View handles GET /api/carts/:id.
func (h *CartHandler) View(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "cart"})
		return fail(c, fiber.StatusBadRequest, "invalid cart id")
	}
	resp, err := h.Cart.GetCart(c.UserContext(), id)
	if err != nil {
		if isNotFound(err) {
			return fail(c, fiber.StatusNotFound, "cart not found")
		}
		return failFor(c, "cart.view", err)
	}
	return c.JSON(resp)
}
