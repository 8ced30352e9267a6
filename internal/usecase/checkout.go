package usecase

import (
	"context"
	"errors"
	"log/slog"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
)

// Mailer is the notification collaborator. Order confirmations are
// fire-and-forget; passcode deliveries are not.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, to, orderReference string) error
	SendPasscode(ctx context.Context, to string, purpose model.PasscodePurpose, code string) error
}

// CheckoutUseCase turns carts and buy-now requests into committed orders.
// The storage layer runs each checkout in a single transaction; this layer
// validates input, normalizes errors, and sends the confirmation email
// after the transaction has committed.
type CheckoutUseCase struct {
	orders repository.OrderRepository
	mailer Mailer
	logger *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders repository.OrderRepository, mailer Mailer, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, mailer: mailer, logger: logger}
}

// CheckoutCart converts the whole cart into one order.
func (u *CheckoutUseCase) CheckoutCart(ctx context.Context, userID, addressID int64, email string) (*model.Order, error) {
	order, err := u.orders.CreateFromCart(ctx, userID, addressID)
	if err != nil {
		return nil, u.checkoutError(ctx, err)
	}

	u.notify(ctx, email, order)
	return order, nil
}

// BuyNow purchases a single product directly, bypassing the cart.
func (u *CheckoutUseCase) BuyNow(ctx context.Context, userID, productID int64, quantity int, addressID int64, email string) (*model.Order, error) {
	if quantity <= 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	order, err := u.orders.CreateBuyNow(ctx, userID, productID, quantity, addressID)
	if err != nil {
		return nil, u.checkoutError(ctx, err)
	}

	u.notify(ctx, email, order)
	return order, nil
}

// checkoutError passes domain failures through untouched and folds any
// unexpected storage error into ErrCheckoutFailed so callers never see
// storage internals.
func (u *CheckoutUseCase) checkoutError(ctx context.Context, err error) error {
	var insufficient *domainErrors.InsufficientStockError
	switch {
	case errors.Is(err, domainErrors.ErrEmptyCart),
		errors.Is(err, domainErrors.ErrProductNotFound),
		errors.As(err, &insufficient):
		return err
	}

	u.logger.ErrorContext(ctx, "checkout transaction failed", slog.String("error", err.Error()))
	return domainErrors.ErrCheckoutFailed
}

// notify runs after the order has committed. A delivery failure is logged
// and never unwinds the order.
func (u *CheckoutUseCase) notify(ctx context.Context, email string, order *model.Order) {
	if err := u.mailer.SendOrderConfirmation(ctx, email, order.Reference); err != nil {
		u.logger.ErrorContext(ctx, "order confirmation not delivered",
			slog.String("order", order.Reference),
			slog.String("error", err.Error()),
		)
	}
}
