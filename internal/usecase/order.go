package usecase

import (
	"context"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
)

const defaultStatusListLimit = 50

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Get returns one order. Orders belonging to other users are reported as
// not found rather than forbidden.
func (u *OrderUseCase) Get(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrOrderNotFound
	}
	return order, nil
}

// GetAny returns one order without an ownership check, for admin views.
func (u *OrderUseCase) GetAny(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// ListByStatus returns orders in the given status across all users.
func (u *OrderUseCase) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if !status.IsValid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	if limit <= 0 {
		limit = defaultStatusListLimit
	}
	return u.orders.ListByStatus(ctx, status, limit)
}

// SetStatus moves an order to a new status, reconciling stock as needed.
func (u *OrderUseCase) SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if !status.IsValid() {
		return domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}
