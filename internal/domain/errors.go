package domain

import "errors"

// Business failures. Callers wrap them with detail and match with errors.Is.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrCartConflict    = errors.New("cart was modified concurrently")
	ErrInvalidProduct  = errors.New("invalid product")
)

// IsBusiness reports whether err is one of the request-level failures above
// that a client can fix by changing its request.
func IsBusiness(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCartNotFound) ||
		errors.Is(err, ErrInvalidCurrency) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidProduct)
}
