package usecase

import (
	"context"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
)

// CartUseCase manages the per-user shopping cart.
type CartUseCase struct {
	carts repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository) *CartUseCase {
	return &CartUseCase{carts: carts}
}

// Add puts a product in the cart, incrementing an existing line.
func (u *CartUseCase) Add(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	return u.carts.Add(ctx, userID, productID, quantity)
}

// SetQuantity overwrites a line's quantity.
func (u *CartUseCase) SetQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	return u.carts.SetQuantity(ctx, userID, productID, quantity)
}

// Remove deletes one line from the cart.
func (u *CartUseCase) Remove(ctx context.Context, userID, productID int64) error {
	return u.carts.Remove(ctx, userID, productID)
}

// List returns the cart lines with product snapshots, in insertion order.
func (u *CartUseCase) List(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return u.carts.ListByUser(ctx, userID)
}

// Clear empties the user's cart.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}
