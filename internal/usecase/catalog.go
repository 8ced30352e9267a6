package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
)

// CatalogUseCase manages the product catalog and gallery images.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

func validateProduct(p *model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return domainErrors.ErrInvalidProduct
	}
	if p.Price.IsNegative() {
		return domainErrors.ErrInvalidProduct
	}
	if p.Quantity < 0 {
		return domainErrors.ErrInvalidQuantity
	}
	if !p.Status.IsValid() {
		return domainErrors.ErrInvalidStatus
	}
	return nil
}

// Create registers a new piece. Status defaults to draft.
func (u *CatalogUseCase) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.Status == "" {
		product.Status = model.ProductStatusDraft
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, product)
}

// Update persists catalog fields; the stock quantity is not touched here.
func (u *CatalogUseCase) Update(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return u.products.Update(ctx, product)
}

// SetStatus moves a piece through its visibility lifecycle.
func (u *CatalogUseCase) SetStatus(ctx context.Context, id int64, status model.ProductStatus) error {
	if !status.IsValid() {
		return domainErrors.ErrInvalidStatus
	}
	return u.products.SetStatus(ctx, id, status)
}

// Get fetches one product.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns catalog entries matching the filter.
func (u *CatalogUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.products.List(ctx, filter)
}

// AttachImage records a freshly uploaded gallery image on the product and
// returns its generated identifier.
func (u *CatalogUseCase) AttachImage(ctx context.Context, productID int64) (string, error) {
	imageID := uuid.NewString()
	if err := u.products.AddImage(ctx, productID, imageID); err != nil {
		return "", err
	}
	return imageID, nil
}

// StockOnHand reads the live purchasable quantity for a product.
func (u *CatalogUseCase) StockOnHand(ctx context.Context, productID int64) (int, error) {
	return u.products.Quantity(ctx, productID)
}
