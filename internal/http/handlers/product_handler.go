package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "storecart/internal/log"
	"storecart/internal/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	ps, err := h.Catalog.ListProducts(c.UserContext())
	if err != nil {
		return failFor(c, "product.list", err)
	}
	return c.JSON(ps)
}

// Create handles POST /api/products. Mounted behind RequireAdmin.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req services.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	p, err := h.Catalog.CreateProduct(c.UserContext(), req)
	if err != nil {
		return failFor(c, "product.create", err)
	}
	applog.Audit(c, "product.created", map[string]any{"product_id": p.ID, "sku": p.SKU})
	return c.Status(fiber.StatusCreated).JSON(p)
}
