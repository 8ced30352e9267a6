package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutFailed     = errors.New("checkout failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidRating      = errors.New("invalid rating")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPasscode    = errors.New("invalid passcode")
	ErrPasscodeExpired    = errors.New("passcode expired")
)

// InsufficientStockError reports which products cannot cover the requested
// quantities. No stock is mutated when it is returned.
type InsufficientStockError struct {
	Products []string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %s", strings.Join(e.Products, ", "))
}
