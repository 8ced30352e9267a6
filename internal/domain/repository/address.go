package repository

import (
	"context"

	"github.com/strandart/shop/internal/domain/model"
)

// AddressRepository manages shipping addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) (*model.Address, error)
	GetByID(ctx context.Context, id int64) (*model.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Address, error)
	Delete(ctx context.Context, id, userID int64) error
}
