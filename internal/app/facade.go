package app

import (
	"context"
	"time"

	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
	"github.com/strandart/shop/internal/usecase"
)

// StorefrontFacade is the single entry point the HTTP layer and the
// background janitor talk to. It delegates to the use cases without
// adding behaviour of its own.
type StorefrontFacade struct {
	auth      *usecase.AuthUseCase
	catalog   *usecase.CatalogUseCase
	cart      *usecase.CartUseCase
	checkout  *usecase.CheckoutUseCase
	orders    *usecase.OrderUseCase
	reviews   *usecase.ReviewUseCase
	addresses *usecase.AddressUseCase
	analytics *usecase.AnalyticsUseCase
}

func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	checkout *usecase.CheckoutUseCase,
	orders *usecase.OrderUseCase,
	reviews *usecase.ReviewUseCase,
	addresses *usecase.AddressUseCase,
	analytics *usecase.AnalyticsUseCase,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:      auth,
		catalog:   catalog,
		cart:      cart,
		checkout:  checkout,
		orders:    orders,
		reviews:   reviews,
		addresses: addresses,
		analytics: analytics,
	}
}

func (f *StorefrontFacade) RequestPasscode(ctx context.Context, email string, purpose model.PasscodePurpose) error {
	return f.auth.RequestPasscode(ctx, email, purpose)
}

func (f *StorefrontFacade) CompleteSignup(ctx context.Context, email, name, password, code string) (*model.User, string, error) {
	return f.auth.CompleteSignup(ctx, email, name, password, code)
}

func (f *StorefrontFacade) ResetPassword(ctx context.Context, email, password, code string) error {
	return f.auth.ResetPassword(ctx, email, password, code)
}

func (f *StorefrontFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *StorefrontFacade) PurgeExpiredPasscodes(ctx context.Context) (int64, error) {
	return f.auth.PurgeExpiredPasscodes(ctx)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, product)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, product *model.Product) error {
	return f.catalog.Update(ctx, product)
}

func (f *StorefrontFacade) SetProductStatus(ctx context.Context, id int64, status model.ProductStatus) error {
	return f.catalog.SetStatus(ctx, id, status)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return f.catalog.List(ctx, filter)
}

func (f *StorefrontFacade) AttachProductImage(ctx context.Context, productID int64) (string, error) {
	return f.catalog.AttachImage(ctx, productID)
}

func (f *StorefrontFacade) StockOnHand(ctx context.Context, productID int64) (int, error) {
	return f.catalog.StockOnHand(ctx, productID)
}

func (f *StorefrontFacade) AddToCart(ctx context.Context, userID, productID int64, quantity int) error {
	return f.cart.Add(ctx, userID, productID, quantity)
}

func (f *StorefrontFacade) SetCartQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	return f.cart.SetQuantity(ctx, userID, productID, quantity)
}

func (f *StorefrontFacade) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	return f.cart.Remove(ctx, userID, productID)
}

func (f *StorefrontFacade) Cart(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return f.cart.List(ctx, userID)
}

func (f *StorefrontFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

func (f *StorefrontFacade) CheckoutCart(ctx context.Context, userID, addressID int64, email string) (*model.Order, error) {
	return f.checkout.CheckoutCart(ctx, userID, addressID, email)
}

func (f *StorefrontFacade) BuyNow(ctx context.Context, userID, productID int64, quantity int, addressID int64, email string) (*model.Order, error) {
	return f.checkout.BuyNow(ctx, userID, productID, quantity, addressID, email)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, userID, orderID)
}

func (f *StorefrontFacade) OrderAny(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.GetAny(ctx, orderID)
}

func (f *StorefrontFacade) OrdersByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	return f.orders.ListByStatus(ctx, status, limit)
}

func (f *StorefrontFacade) SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return f.orders.SetStatus(ctx, orderID, status)
}

func (f *StorefrontFacade) CreateReview(ctx context.Context, userID, productID int64, rating int, body string) (*model.Review, error) {
	return f.reviews.Create(ctx, userID, productID, rating, body)
}

func (f *StorefrontFacade) Reviews(ctx context.Context, productID int64) ([]model.Review, error) {
	return f.reviews.ListByProduct(ctx, productID)
}

func (f *StorefrontFacade) DeleteReview(ctx context.Context, id, userID int64) error {
	return f.reviews.Delete(ctx, id, userID)
}

func (f *StorefrontFacade) CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	return f.addresses.Create(ctx, address)
}

func (f *StorefrontFacade) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return f.addresses.List(ctx, userID)
}

func (f *StorefrontFacade) DeleteAddress(ctx context.Context, id, userID int64) error {
	return f.addresses.Delete(ctx, id, userID)
}

func (f *StorefrontFacade) SalesByDay(ctx context.Context, from, to time.Time) ([]model.SalesPoint, error) {
	return f.analytics.SalesByDay(ctx, from, to)
}

func (f *StorefrontFacade) TopProducts(ctx context.Context, limit int) ([]model.ProductSales, error) {
	return f.analytics.TopProducts(ctx, limit)
}
