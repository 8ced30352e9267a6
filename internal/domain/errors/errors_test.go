package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"product not found", ErrProductNotFound},
		{"order not found", ErrOrderNotFound},
		{"empty cart", ErrEmptyCart},
		{"checkout failed", ErrCheckoutFailed},
		{"invalid credentials", ErrInvalidCredentials},
		{"invalid quantity", ErrInvalidQuantity},
		{"invalid product", ErrInvalidProduct},
		{"invalid rating", ErrInvalidRating},
		{"invalid status", ErrInvalidStatus},
		{"invalid passcode", ErrInvalidPasscode},
		{"passcode expired", ErrPasscodeExpired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestInsufficientStockError(t *testing.T) {
	err := &InsufficientStockError{Products: []string{"Nebula", "Tidal Knot"}}
	if err.Error() != "insufficient stock: Nebula, Tidal Knot" {
		t.Fatalf("unexpected message: %s", err.Error())
	}

	wrapped := fmt.Errorf("checkout: %w", err)
	var target *InsufficientStockError
	if !stdErrors.As(wrapped, &target) {
		t.Fatal("expected errors.As to unwrap InsufficientStockError")
	}
	if len(target.Products) != 2 || target.Products[0] != "Nebula" {
		t.Fatalf("unexpected products: %v", target.Products)
	}
}
