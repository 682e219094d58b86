package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storecart/internal/services"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories(c.UserContext())
	if err != nil {
		return failFor(c, "category.list", err)
	}
	return c.JSON(cats)
}
