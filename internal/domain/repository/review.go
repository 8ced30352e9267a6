package repository

import (
	"context"

	"github.com/strandart/shop/internal/domain/model"
)

// ReviewRepository manages product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.Review, error)
	Delete(ctx context.Context, id, userID int64) error
}
