package test

import (
	"context"
	"time"

	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
)

// StorefrontFacadeStub provides controllable behaviour for HTTP layer
// tests. Every method delegates to its Fn override when set and otherwise
// returns a benign default.
type StorefrontFacadeStub struct {
	RequestPasscodeFn func(context.Context, string, model.PasscodePurpose) error
	CompleteSignupFn  func(context.Context, string, string, string, string) (*model.User, string, error)
	ResetPasswordFn   func(context.Context, string, string, string) error
	LoginFn           func(context.Context, string, string) (*model.User, string, error)
	ParseTokenFn      func(string) (int64, error)
	UserByIDFn        func(context.Context, int64) (*model.User, error)

	CreateProductFn      func(context.Context, *model.Product) (*model.Product, error)
	UpdateProductFn      func(context.Context, *model.Product) error
	SetProductStatusFn   func(context.Context, int64, model.ProductStatus) error
	ProductFn            func(context.Context, int64) (*model.Product, error)
	ProductsFn           func(context.Context, repository.ProductFilter) ([]model.Product, error)
	AttachProductImageFn func(context.Context, int64) (string, error)
	StockOnHandFn        func(context.Context, int64) (int, error)

	AddToCartFn       func(context.Context, int64, int64, int) error
	SetCartQuantityFn func(context.Context, int64, int64, int) error
	RemoveFromCartFn  func(context.Context, int64, int64) error
	CartFn            func(context.Context, int64) ([]model.CartLine, error)
	ClearCartFn       func(context.Context, int64) error

	CheckoutCartFn func(context.Context, int64, int64, string) (*model.Order, error)
	BuyNowFn       func(context.Context, int64, int64, int, int64, string) (*model.Order, error)

	OrdersFn         func(context.Context, int64) ([]model.Order, error)
	OrderFn          func(context.Context, int64, int64) (*model.Order, error)
	OrderAnyFn       func(context.Context, int64) (*model.Order, error)
	OrdersByStatusFn func(context.Context, model.OrderStatus, int) ([]model.Order, error)
	SetOrderStatusFn func(context.Context, int64, model.OrderStatus) error

	CreateReviewFn func(context.Context, int64, int64, int, string) (*model.Review, error)
	ReviewsFn      func(context.Context, int64) ([]model.Review, error)
	DeleteReviewFn func(context.Context, int64, int64) error

	CreateAddressFn func(context.Context, *model.Address) (*model.Address, error)
	AddressesFn     func(context.Context, int64) ([]model.Address, error)
	DeleteAddressFn func(context.Context, int64, int64) error

	SalesByDayFn  func(context.Context, time.Time, time.Time) ([]model.SalesPoint, error)
	TopProductsFn func(context.Context, int) ([]model.ProductSales, error)
}

func (s *StorefrontFacadeStub) RequestPasscode(ctx context.Context, email string, purpose model.PasscodePurpose) error {
	if s.RequestPasscodeFn != nil {
		return s.RequestPasscodeFn(ctx, email, purpose)
	}
	return nil
}

func (s *StorefrontFacadeStub) CompleteSignup(ctx context.Context, email, name, password, code string) (*model.User, string, error) {
	if s.CompleteSignupFn != nil {
		return s.CompleteSignupFn(ctx, email, name, password, code)
	}
	return &model.User{ID: 1, Email: email, Name: name}, "token", nil
}

func (s *StorefrontFacadeStub) ResetPassword(ctx context.Context, email, password, code string) error {
	if s.ResetPasswordFn != nil {
		return s.ResetPasswordFn(ctx, email, password, code)
	}
	return nil
}

func (s *StorefrontFacadeStub) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email}, "token", nil
}

func (s *StorefrontFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

func (s *StorefrontFacadeStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Email: "user@example.com"}, nil
}

func (s *StorefrontFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	created := *product
	created.ID = 1
	return &created, nil
}

func (s *StorefrontFacadeStub) UpdateProduct(ctx context.Context, product *model.Product) error {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return nil
}

func (s *StorefrontFacadeStub) SetProductStatus(ctx context.Context, id int64, status model.ProductStatus) error {
	if s.SetProductStatusFn != nil {
		return s.SetProductStatusFn(ctx, id, status)
	}
	return nil
}

func (s *StorefrontFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "stub", Status: model.ProductStatusActive}, nil
}

func (s *StorefrontFacadeStub) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return nil, nil
}

func (s *StorefrontFacadeStub) AttachProductImage(ctx context.Context, productID int64) (string, error) {
	if s.AttachProductImageFn != nil {
		return s.AttachProductImageFn(ctx, productID)
	}
	return "image-id", nil
}

func (s *StorefrontFacadeStub) StockOnHand(ctx context.Context, productID int64) (int, error) {
	if s.StockOnHandFn != nil {
		return s.StockOnHandFn(ctx, productID)
	}
	return 0, nil
}

func (s *StorefrontFacadeStub) AddToCart(ctx context.Context, userID, productID int64, quantity int) error {
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, userID, productID, quantity)
	}
	return nil
}

func (s *StorefrontFacadeStub) SetCartQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	if s.SetCartQuantityFn != nil {
		return s.SetCartQuantityFn(ctx, userID, productID, quantity)
	}
	return nil
}

func (s *StorefrontFacadeStub) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	if s.RemoveFromCartFn != nil {
		return s.RemoveFromCartFn(ctx, userID, productID)
	}
	return nil
}

func (s *StorefrontFacadeStub) Cart(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return nil, nil
}

func (s *StorefrontFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearCartFn != nil {
		return s.ClearCartFn(ctx, userID)
	}
	return nil
}

func (s *StorefrontFacadeStub) CheckoutCart(ctx context.Context, userID, addressID int64, email string) (*model.Order, error) {
	if s.CheckoutCartFn != nil {
		return s.CheckoutCartFn(ctx, userID, addressID, email)
	}
	return &model.Order{ID: 1, UserID: userID, Reference: "ref", Status: model.OrderStatusPending}, nil
}

func (s *StorefrontFacadeStub) BuyNow(ctx context.Context, userID, productID int64, quantity int, addressID int64, email string) (*model.Order, error) {
	if s.BuyNowFn != nil {
		return s.BuyNowFn(ctx, userID, productID, quantity, addressID, email)
	}
	return &model.Order{ID: 1, UserID: userID, Reference: "ref", Status: model.OrderStatusPending}, nil
}

func (s *StorefrontFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return nil, nil
}

func (s *StorefrontFacadeStub) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusPending}, nil
}

func (s *StorefrontFacadeStub) OrderAny(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.OrderAnyFn != nil {
		return s.OrderAnyFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPending}, nil
}

func (s *StorefrontFacadeStub) OrdersByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if s.OrdersByStatusFn != nil {
		return s.OrdersByStatusFn(ctx, status, limit)
	}
	return nil, nil
}

func (s *StorefrontFacadeStub) SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.SetOrderStatusFn != nil {
		return s.SetOrderStatusFn(ctx, orderID, status)
	}
	return nil
}

func (s *StorefrontFacadeStub) CreateReview(ctx context.Context, userID, productID int64, rating int, body string) (*model.Review, error) {
	if s.CreateReviewFn != nil {
		return s.CreateReviewFn(ctx, userID, productID, rating, body)
	}
	return &model.Review{ID: 1, UserID: userID, ProductID: productID, Rating: rating, Body: body}, nil
}

func (s *StorefrontFacadeStub) Reviews(ctx context.Context, productID int64) ([]model.Review, error) {
	if s.ReviewsFn != nil {
		return s.ReviewsFn(ctx, productID)
	}
	return nil, nil
}

func (s *StorefrontFacadeStub) DeleteReview(ctx context.Context, id, userID int64) error {
	if s.DeleteReviewFn != nil {
		return s.DeleteReviewFn(ctx, id, userID)
	}
	return nil
}

func (s *StorefrontFacadeStub) CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	if s.CreateAddressFn != nil {
		return s.CreateAddressFn(ctx, address)
	}
	created := *address
	created.ID = 1
	return &created, nil
}

func (s *StorefrontFacadeStub) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.AddressesFn != nil {
		return s.AddressesFn(ctx, userID)
	}
	return nil, nil
}

func (s *StorefrontFacadeStub) DeleteAddress(ctx context.Context, id, userID int64) error {
	if s.DeleteAddressFn != nil {
		return s.DeleteAddressFn(ctx, id, userID)
	}
	return nil
}

func (s *StorefrontFacadeStub) SalesByDay(ctx context.Context, from, to time.Time) ([]model.SalesPoint, error) {
	if s.SalesByDayFn != nil {
		return s.SalesByDayFn(ctx, from, to)
	}
	return nil, nil
}

func (s *StorefrontFacadeStub) TopProducts(ctx context.Context, limit int) ([]model.ProductSales, error) {
	if s.TopProductsFn != nil {
		return s.TopProductsFn(ctx, limit)
	}
	return nil, nil
}
