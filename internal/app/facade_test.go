package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
	testhelpers "github.com/strandart/shop/internal/test"
	"github.com/strandart/shop/internal/usecase"
)

type facadeFixture struct {
	facade    *StorefrontFacade
	users     *testhelpers.UserRepositoryStub
	products  *testhelpers.ProductRepositoryStub
	carts     *testhelpers.CartRepositoryStub
	orders    *testhelpers.OrderRepositoryStub
	reviews   *testhelpers.ReviewRepositoryStub
	addresses *testhelpers.AddressRepositoryStub
	passcodes *testhelpers.PasscodeRepositoryStub
	mailer    *testhelpers.MailerStub
}

func newFacadeFixture() *facadeFixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	users := testhelpers.NewUserRepositoryStub()
	products := &testhelpers.ProductRepositoryStub{}
	carts := &testhelpers.CartRepositoryStub{}
	orders := &testhelpers.OrderRepositoryStub{}
	reviews := &testhelpers.ReviewRepositoryStub{}
	addresses := &testhelpers.AddressRepositoryStub{}
	passcodes := &testhelpers.PasscodeRepositoryStub{}
	analytics := &testhelpers.AnalyticsRepositoryStub{}
	mailer := &testhelpers.MailerStub{}

	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(users, passcodes, testhelpers.HasherStub{}, strategy, mailer, 10*time.Minute, logger)

	facade := NewStorefrontFacade(
		authUC,
		usecase.NewCatalogUseCase(products),
		usecase.NewCartUseCase(carts),
		usecase.NewCheckoutUseCase(orders, mailer, logger),
		usecase.NewOrderUseCase(orders),
		usecase.NewReviewUseCase(reviews, products),
		usecase.NewAddressUseCase(addresses),
		usecase.NewAnalyticsUseCase(analytics),
	)
	return &facadeFixture{
		facade:    facade,
		users:     users,
		products:  products,
		carts:     carts,
		orders:    orders,
		reviews:   reviews,
		addresses: addresses,
		passcodes: passcodes,
		mailer:    mailer,
	}
}

func TestStorefrontFacadeAuthFlow(t *testing.T) {
	fx := newFacadeFixture()
	ctx := context.Background()
	email := testhelpers.RandomEmail()

	if err := fx.facade.RequestPasscode(ctx, email, model.PasscodePurposeSignup); err != nil {
		t.Fatalf("request passcode failed: %v", err)
	}
	code := fx.mailer.Passcodes[0].Code

	user, token, err := fx.facade.CompleteSignup(ctx, email, "Alice", "pw", code)
	if err != nil {
		t.Fatalf("complete signup failed: %v", err)
	}
	if token == "" || user.Email != email {
		t.Fatalf("unexpected signup result user=%+v token=%q", user, token)
	}

	if _, _, err := fx.facade.Login(ctx, email, "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	id, err := fx.facade.ParseToken("anything")
	if err != nil || id != 99 {
		t.Fatalf("unexpected parse result id=%d err=%v", id, err)
	}

	if _, err := fx.facade.UserByID(ctx, user.ID); err != nil {
		t.Fatalf("user by id failed: %v", err)
	}
}

func TestStorefrontFacadeCatalogAndCart(t *testing.T) {
	fx := newFacadeFixture()
	ctx := context.Background()

	created, err := fx.facade.CreateProduct(ctx, &model.Product{Name: "Nebula"})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	listed, err := fx.facade.Products(ctx, repository.ProductFilter{})
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one product, got %v err=%v", listed, err)
	}

	if err := fx.facade.AddToCart(ctx, 1, created.ID, 2); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	if len(fx.carts.Added) != 1 {
		t.Fatalf("expected cart add to be recorded")
	}
	if err := fx.facade.ClearCart(ctx, 1); err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}
}

func TestStorefrontFacadeCheckoutAndOrders(t *testing.T) {
	fx := newFacadeFixture()
	ctx := context.Background()
	reference := testhelpers.RandomReference()

	fx.orders.CreateFromCartFn = func(ctx context.Context, userID, addressID int64) (*model.Order, error) {
		return &model.Order{ID: 5, UserID: userID, Reference: reference, Status: model.OrderStatusPending}, nil
	}
	order, err := fx.facade.CheckoutCart(ctx, 1, 2, "a@b.c")
	if err != nil || order.Reference != reference {
		t.Fatalf("unexpected checkout result order=%+v err=%v", order, err)
	}

	fx.orders.Orders = []model.Order{{ID: 5, UserID: 1}}
	if _, err := fx.facade.Order(ctx, 1, 5); err != nil {
		t.Fatalf("order fetch failed: %v", err)
	}
	if _, err := fx.facade.Order(ctx, 2, 5); !errors.Is(err, domainErrors.ErrOrderNotFound) {
		t.Fatalf("expected ownership failure, got %v", err)
	}

	if err := fx.facade.SetOrderStatus(ctx, 5, model.OrderStatusCancelled); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if len(fx.orders.UpdateCalls) != 1 {
		t.Fatalf("expected one status update")
	}
}

func TestStorefrontFacadePurgeExpiredPasscodes(t *testing.T) {
	fx := newFacadeFixture()
	fx.passcodes.PurgeExpiredFn = func(ctx context.Context) (int64, error) { return 4, nil }

	purged, err := fx.facade.PurgeExpiredPasscodes(context.Background())
	if err != nil || purged != 4 {
		t.Fatalf("unexpected purge result %d err=%v", purged, err)
	}
}
