package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "storecart/internal/log"
	"storecart/internal/services"
	"storecart/internal/validate"
)

type TaxHandler struct {
	Taxes *services.TaxService
}

// List handles GET /api/taxes?region=ON&currency=CAD.
func (h *TaxHandler) List(c *fiber.Ctx) error {
	region, ok := validate.Region(c.Query("region"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "region", "value": c.Query("region")})
		return fail(c, fiber.StatusBadRequest, "enter a valid region code, e.g. ON")
	}
	currency, ok := validate.Currency(c.Query("currency"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "currency", "value": c.Query("currency")})
		return fail(c, fiber.StatusBadRequest, "enter a valid currency code, e.g. CAD")
	}

	taxes, err := h.Taxes.TaxesForRegion(c.UserContext(), region, currency)
	if err != nil {
		return failFor(c, "tax.list", err)
	}
	out := make([]services.TaxBreakdownResponse, 0, len(taxes))
	for _, t := range taxes {
		out = append(out, services.TaxBreakdownResponse{TaxType: string(t.Kind), Percentage: t.Percentage, Name: t.Name})
	}
	return c.JSON(fiber.Map{"region": region, "currencyCode": currency, "taxes": out})
}
