package test

import (
	"context"
	"time"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, Name: name, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdatePassword replaces the stored hash for an existing user.
func (s *UserRepositoryStub) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.Users[email]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

// ProductRepositoryStub allows tests to customize catalog behaviour.
type ProductRepositoryStub struct {
	CreateFn    func(context.Context, *model.Product) (*model.Product, error)
	GetByIDFn   func(context.Context, int64) (*model.Product, error)
	ListFn      func(context.Context, repository.ProductFilter) ([]model.Product, error)
	UpdateFn    func(context.Context, *model.Product) error
	SetStatusFn func(context.Context, int64, model.ProductStatus) error
	AddImageFn  func(context.Context, int64, string) error
	QuantityFn  func(context.Context, int64) (int, error)

	Products []model.Product
	Images   []string
}

// Create delegates to the override or echoes the product with an ID.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	created := *product
	created.ID = int64(len(s.Products) + 1)
	s.Products = append(s.Products, created)
	return &created, nil
}

// GetByID returns a stored product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrProductNotFound
}

// List returns the configured slice.
func (s *ProductRepositoryStub) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Products, nil
}

// Update applies the override when provided.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	return nil
}

// SetStatus applies the override when provided.
func (s *ProductRepositoryStub) SetStatus(ctx context.Context, id int64, status model.ProductStatus) error {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	return nil
}

// AddImage records attached image identifiers.
func (s *ProductRepositoryStub) AddImage(ctx context.Context, id int64, imageID string) error {
	if s.AddImageFn != nil {
		return s.AddImageFn(ctx, id, imageID)
	}
	s.Images = append(s.Images, imageID)
	return nil
}

// Quantity returns the stored product's stock level.
func (s *ProductRepositoryStub) Quantity(ctx context.Context, id int64) (int, error) {
	if s.QuantityFn != nil {
		return s.QuantityFn(ctx, id)
	}
	for _, p := range s.Products {
		if p.ID == id {
			return p.Quantity, nil
		}
	}
	return 0, domainErrors.ErrProductNotFound
}

// CartCall records one mutation of the cart stub.
type CartCall struct {
	UserID    int64
	ProductID int64
	Quantity  int
}

// CartRepositoryStub tracks cart mutations for tests.
type CartRepositoryStub struct {
	AddFn         func(context.Context, int64, int64, int) error
	SetQuantityFn func(context.Context, int64, int64, int) error
	RemoveFn      func(context.Context, int64, int64) error
	ListFn        func(context.Context, int64) ([]model.CartLine, error)
	ClearFn       func(context.Context, int64) error

	Lines   []model.CartLine
	Added   []CartCall
	Set     []CartCall
	Removed []CartCall
	Cleared []int64
}

// Add records the call and delegates to the override.
func (s *CartRepositoryStub) Add(ctx context.Context, userID, productID int64, quantity int) error {
	s.Added = append(s.Added, CartCall{UserID: userID, ProductID: productID, Quantity: quantity})
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID, quantity)
	}
	return nil
}

// SetQuantity records the call and delegates to the override.
func (s *CartRepositoryStub) SetQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	s.Set = append(s.Set, CartCall{UserID: userID, ProductID: productID, Quantity: quantity})
	if s.SetQuantityFn != nil {
		return s.SetQuantityFn(ctx, userID, productID, quantity)
	}
	return nil
}

// Remove records the call and delegates to the override.
func (s *CartRepositoryStub) Remove(ctx context.Context, userID, productID int64) error {
	s.Removed = append(s.Removed, CartCall{UserID: userID, ProductID: productID})
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	return nil
}

// ListByUser returns configured cart lines.
func (s *CartRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return s.Lines, nil
}

// Clear records which users had their carts emptied.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	s.Cleared = append(s.Cleared, userID)
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// StatusUpdateCall stores information about UpdateStatus invocations.
type StatusUpdateCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize checkout behaviour.
type OrderRepositoryStub struct {
	CreateFromCartFn func(context.Context, int64, int64) (*model.Order, error)
	CreateBuyNowFn   func(context.Context, int64, int64, int, int64) (*model.Order, error)
	GetByIDFn        func(context.Context, int64) (*model.Order, error)
	ListByUserFn     func(context.Context, int64) ([]model.Order, error)
	ListByStatusFn   func(context.Context, model.OrderStatus, int) ([]model.Order, error)
	UpdateStatusFn   func(context.Context, int64, model.OrderStatus) error

	Orders      []model.Order
	UpdateCalls []StatusUpdateCall
}

// CreateFromCart delegates to the override or returns a pending order.
func (s *OrderRepositoryStub) CreateFromCart(ctx context.Context, userID, addressID int64) (*model.Order, error) {
	if s.CreateFromCartFn != nil {
		return s.CreateFromCartFn(ctx, userID, addressID)
	}
	return &model.Order{ID: 1, UserID: userID, AddressID: addressID, Status: model.OrderStatusPending}, nil
}

// CreateBuyNow delegates to the override or returns a pending order.
func (s *OrderRepositoryStub) CreateBuyNow(ctx context.Context, userID, productID int64, quantity int, addressID int64) (*model.Order, error) {
	if s.CreateBuyNowFn != nil {
		return s.CreateBuyNowFn(ctx, userID, productID, quantity, addressID)
	}
	return &model.Order{ID: 1, UserID: userID, AddressID: addressID, Status: model.OrderStatusPending}, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	for _, o := range s.Orders {
		if o.ID == orderID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrOrderNotFound
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// ListByStatus returns orders from configured slice.
func (s *OrderRepositoryStub) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if s.ListByStatusFn != nil {
		return s.ListByStatusFn(ctx, status, limit)
	}
	return s.Orders, nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{OrderID: orderID, Status: status})
	return nil
}

// AddressRepositoryStub stores addresses for tests.
type AddressRepositoryStub struct {
	CreateFn func(context.Context, *model.Address) (*model.Address, error)
	ListFn   func(context.Context, int64) ([]model.Address, error)
	DeleteFn func(context.Context, int64, int64) error

	Items []model.Address
}

// Create delegates to the override or echoes the address with an ID.
func (s *AddressRepositoryStub) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, address)
	}
	created := *address
	created.ID = int64(len(s.Items) + 1)
	s.Items = append(s.Items, created)
	return &created, nil
}

// GetByID returns a stored address or not found.
func (s *AddressRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Address, error) {
	for _, a := range s.Items {
		if a.ID == id {
			address := a
			return &address, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns configured addresses.
func (s *AddressRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return s.Items, nil
}

// Delete applies the override when provided.
func (s *AddressRepositoryStub) Delete(ctx context.Context, id, userID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id, userID)
	}
	return nil
}

// ReviewRepositoryStub stores reviews for tests.
type ReviewRepositoryStub struct {
	CreateFn func(context.Context, *model.Review) (*model.Review, error)
	ListFn   func(context.Context, int64) ([]model.Review, error)
	DeleteFn func(context.Context, int64, int64) error

	Items []model.Review
}

// Create delegates to the override or echoes the review with an ID.
func (s *ReviewRepositoryStub) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, review)
	}
	created := *review
	created.ID = int64(len(s.Items) + 1)
	s.Items = append(s.Items, created)
	return &created, nil
}

// ListByProduct returns configured reviews.
func (s *ReviewRepositoryStub) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, productID)
	}
	return s.Items, nil
}

// Delete applies the override when provided.
func (s *ReviewRepositoryStub) Delete(ctx context.Context, id, userID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id, userID)
	}
	return nil
}

// PasscodeRepositoryStub keeps one-time code challenges in memory.
type PasscodeRepositoryStub struct {
	UpsertFn       func(context.Context, string, model.PasscodePurpose, string, time.Time) error
	GetFn          func(context.Context, string, model.PasscodePurpose) (*model.PasscodeChallenge, error)
	DeleteFn       func(context.Context, string, model.PasscodePurpose) error
	PurgeExpiredFn func(context.Context) (int64, error)

	Challenges map[string]*model.PasscodeChallenge
	Deleted    []string
}

func passcodeKey(email string, purpose model.PasscodePurpose) string {
	return email + "|" + string(purpose)
}

// Upsert stores the challenge under (email, purpose).
func (s *PasscodeRepositoryStub) Upsert(ctx context.Context, email string, purpose model.PasscodePurpose, codeHash string, expiresAt time.Time) error {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, email, purpose, codeHash, expiresAt)
	}
	if s.Challenges == nil {
		s.Challenges = make(map[string]*model.PasscodeChallenge)
	}
	s.Challenges[passcodeKey(email, purpose)] = &model.PasscodeChallenge{
		Email: email, Purpose: purpose, CodeHash: codeHash, ExpiresAt: expiresAt,
	}
	return nil
}

// Get returns a stored challenge or not found.
func (s *PasscodeRepositoryStub) Get(ctx context.Context, email string, purpose model.PasscodePurpose) (*model.PasscodeChallenge, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, email, purpose)
	}
	if challenge, ok := s.Challenges[passcodeKey(email, purpose)]; ok {
		return challenge, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete records the removal and drops the challenge.
func (s *PasscodeRepositoryStub) Delete(ctx context.Context, email string, purpose model.PasscodePurpose) error {
	s.Deleted = append(s.Deleted, passcodeKey(email, purpose))
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, email, purpose)
	}
	delete(s.Challenges, passcodeKey(email, purpose))
	return nil
}

// PurgeExpired applies the override or reports zero purged rows.
func (s *PasscodeRepositoryStub) PurgeExpired(ctx context.Context) (int64, error) {
	if s.PurgeExpiredFn != nil {
		return s.PurgeExpiredFn(ctx)
	}
	return 0, nil
}

// AnalyticsRepositoryStub returns canned aggregates.
type AnalyticsRepositoryStub struct {
	SalesByDayFn  func(context.Context, time.Time, time.Time) ([]model.SalesPoint, error)
	TopProductsFn func(context.Context, int) ([]model.ProductSales, error)

	Sales []model.SalesPoint
	Top   []model.ProductSales
}

// SalesByDay returns configured points.
func (s *AnalyticsRepositoryStub) SalesByDay(ctx context.Context, from, to time.Time) ([]model.SalesPoint, error) {
	if s.SalesByDayFn != nil {
		return s.SalesByDayFn(ctx, from, to)
	}
	return s.Sales, nil
}

// TopProducts returns configured rows.
func (s *AnalyticsRepositoryStub) TopProducts(ctx context.Context, limit int) ([]model.ProductSales, error) {
	if s.TopProductsFn != nil {
		return s.TopProductsFn(ctx, limit)
	}
	return s.Top, nil
}
