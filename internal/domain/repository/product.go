package repository

import (
	"context"

	"github.com/strandart/shop/internal/domain/model"
)

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	Status   model.ProductStatus
	Category string
}

// ProductRepository owns the catalog and the stock ledger. Quantity is
// adjusted only inside checkout and status-reconciliation transactions in
// the storage layer, never through Update.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	SetStatus(ctx context.Context, id int64, status model.ProductStatus) error
	AddImage(ctx context.Context, id int64, imageID string) error
	Quantity(ctx context.Context, id int64) (int, error)
}
