package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "storecart/internal/log"
	"storecart/internal/services"
)

// AdminTokenHeader carries the token for catalog writes.
const AdminTokenHeader = "X-Admin-Token"

func RequireAdmin(auth *services.AdminAuth) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := c.Get(AdminTokenHeader)
		if !auth.Check(tok) {
			applog.Security(c, "access.denied.admin", map[string]any{
				"token_present":  tok != "",
				"writes_enabled": auth.Enabled(),
			})
			return fail(c, fiber.StatusForbidden, "Access denied")
		}
		return c.Next()
	}
}
