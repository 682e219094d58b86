package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"storecart/internal/domain"
)

func TestFailForStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"product not found", fmt.Errorf("%w: id 7", domain.ErrProductNotFound), fiber.StatusBadRequest, "product not found"},
		{"cart not found", fmt.Errorf("%w: id 9", domain.ErrCartNotFound), fiber.StatusBadRequest, "cart not found"},
		{"invalid currency", fmt.Errorf("%w: %q", domain.ErrInvalidCurrency, "USD"), fiber.StatusBadRequest, "invalid currency code"},
		{"invalid quantity", domain.ErrInvalidQuantity, fiber.StatusBadRequest, "quantity must be a positive integer"},
		{"invalid product", fmt.Errorf("%w: sku is required", domain.ErrInvalidProduct), fiber.StatusBadRequest, "invalid product: sku is required"},
		{"version conflict", fmt.Errorf("%w: cart 3 at version 2", domain.ErrCartConflict), fiber.StatusConflict, "The cart was changed by another request. Please retry."},
		{"infrastructure", errors.New("update cart 3: database is locked"), fiber.StatusInternalServerError, friendlyError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return failFor(c, "cart.add", tc.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
			raw, _ := io.ReadAll(resp.Body)
			var body ErrorResponse
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatalf("decode %s: %v", raw, err)
			}
			if body.Success || body.Message != tc.msg {
				t.Fatalf("unexpected body: %s", raw)
			}
		})
	}
}
