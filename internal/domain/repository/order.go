package repository

import (
	"context"

	"github.com/strandart/shop/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
//
// CreateFromCart and CreateBuyNow run the whole checkout sequence inside a
// single transaction: stock validation under row locks, order and item
// insertion, stock decrement, and (for cart checkout) cart clearing. Either
// everything commits or nothing does.
//
// UpdateStatus reconciles stock with cancellation transitions in the same
// transaction as the status write. Leaving CANCELLED re-reserves stock
// without re-checking availability, so quantity may go negative if the
// stock was sold while the order sat cancelled.
type OrderRepository interface {
	CreateFromCart(ctx context.Context, userID, addressID int64) (*model.Order, error)
	CreateBuyNow(ctx context.Context, userID, productID int64, quantity int, addressID int64) (*model.Order, error)
	GetByID(ctx context.Context, orderID int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
