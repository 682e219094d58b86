package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"storecart/internal/domain"
	applog "storecart/internal/log"
)

const friendlyError = "Something went wrong. Please try again."

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Success: false, Message: msg})
}

// failFor maps a service error to a response. Business failures are the
// client's to fix and go back as 400 with the failure text; a version
// conflict is 409; anything else is logged and hidden behind a 500.
func failFor(c *fiber.Ctx, action string, err error) error {
	switch {
	case domain.IsBusiness(err):
		applog.Info(c, action+".rejected", map[string]any{"reason": businessMessage(err)})
		return fail(c, fiber.StatusBadRequest, businessMessage(err))
	case errors.Is(err, domain.ErrCartConflict):
		applog.Warn(c, action+".conflict", nil)
		return fail(c, fiber.StatusConflict, "The cart was changed by another request. Please retry.")
	default:
		applog.Error(c, action+".error", err, nil)
		return fail(c, fiber.StatusInternalServerError, friendlyError)
	}
}

func businessMessage(err error) string {
	for _, s := range []error{
		domain.ErrProductNotFound,
		domain.ErrCartNotFound,
		domain.ErrInvalidCurrency,
		domain.ErrInvalidQuantity,
		domain.ErrInvalidProduct,
	} {
		if errors.Is(err, s) {
			if s == domain.ErrInvalidProduct {
				// detail names the offending field
				return err.Error()
			}
			return s.Error()
		}
	}
	return err.Error()
}

// ErrorHandler is the fiber fallback for errors returned by handlers and
// middleware. fiber errors below 500 keep their status and message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return fail(c, fe.Code, fe.Message)
	}
	applog.Error(c, "server.error", err, nil)
	return fail(c, fiber.StatusInternalServerError, friendlyError)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrCartNotFound) || errors.Is(err, domain.ErrProductNotFound)
}
