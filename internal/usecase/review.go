package usecase

import (
	"context"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
)

// ReviewUseCase handles product reviews.
type ReviewUseCase struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository, products repository.ProductRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, products: products}
}

// Create records a review. One review per user per product; a second
// submission surfaces ErrAlreadyExists from the repository.
func (u *ReviewUseCase) Create(ctx context.Context, userID, productID int64, rating int, body string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domainErrors.ErrInvalidRating
	}
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return u.reviews.Create(ctx, &model.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Body:      body,
	})
}

// ListByProduct returns the reviews for a product, newest first.
func (u *ReviewUseCase) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	return u.reviews.ListByProduct(ctx, productID)
}

// Delete removes the user's own review.
func (u *ReviewUseCase) Delete(ctx context.Context, id, userID int64) error {
	return u.reviews.Delete(ctx, id, userID)
}
