package handlers

import (
	"context"
	"time"

	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	RequestPasscode(ctx context.Context, email string, purpose model.PasscodePurpose) error
	CompleteSignup(ctx context.Context, email, name, password, code string) (*model.User, string, error)
	ResetPassword(ctx context.Context, email, password, code string) error
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// CatalogFacade encapsulates catalog operations exposed via HTTP.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	SetProductStatus(ctx context.Context, id int64, status model.ProductStatus) error
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	AttachProductImage(ctx context.Context, productID int64) (string, error)
	StockOnHand(ctx context.Context, productID int64) (int, error)
}

// CartFacade provides cart operations.
type CartFacade interface {
	AddToCart(ctx context.Context, userID, productID int64, quantity int) error
	SetCartQuantity(ctx context.Context, userID, productID int64, quantity int) error
	RemoveFromCart(ctx context.Context, userID, productID int64) error
	Cart(ctx context.Context, userID int64) ([]model.CartLine, error)
	ClearCart(ctx context.Context, userID int64) error
}

// CheckoutFacade turns carts and buy-now requests into orders.
type CheckoutFacade interface {
	CheckoutCart(ctx context.Context, userID, addressID int64, email string) (*model.Order, error)
	BuyNow(ctx context.Context, userID, productID int64, quantity int, addressID int64, email string) (*model.Order, error)
}

// OrderFacade provides order listing and fulfilment operations.
type OrderFacade interface {
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, userID, orderID int64) (*model.Order, error)
	OrderAny(ctx context.Context, orderID int64) (*model.Order, error)
	OrdersByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error)
	SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}

// ReviewFacade provides review operations.
type ReviewFacade interface {
	CreateReview(ctx context.Context, userID, productID int64, rating int, body string) (*model.Review, error)
	Reviews(ctx context.Context, productID int64) ([]model.Review, error)
	DeleteReview(ctx context.Context, id, userID int64) error
}

// AddressFacade provides shipping address operations.
type AddressFacade interface {
	CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error)
	Addresses(ctx context.Context, userID int64) ([]model.Address, error)
	DeleteAddress(ctx context.Context, id, userID int64) error
}

// AnalyticsFacade provides admin sales reports.
type AnalyticsFacade interface {
	SalesByDay(ctx context.Context, from, to time.Time) ([]model.SalesPoint, error)
	TopProducts(ctx context.Context, limit int) ([]model.ProductSales, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	CheckoutFacade
	OrderFacade
	ReviewFacade
	AddressFacade
	AnalyticsFacade
}
