package repository

import (
	"context"

	"github.com/strandart/shop/internal/domain/model"
)

// CartRepository manages per-user cart lines. Lines are unique per
// (user, product); Add increments an existing line.
type CartRepository interface {
	Add(ctx context.Context, userID, productID int64, quantity int) error
	SetQuantity(ctx context.Context, userID, productID int64, quantity int) error
	Remove(ctx context.Context, userID, productID int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error)
	Clear(ctx context.Context, userID int64) error
}
