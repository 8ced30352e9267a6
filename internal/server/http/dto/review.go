package dto

import (
	"time"

	"github.com/strandart/shop/internal/domain/model"
)

// ReviewRequest submits a product review.
type ReviewRequest struct {
	Rating int    `json:"rating"`
	Body   string `json:"body"`
}

// ReviewResponse describes a stored review.
type ReviewResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Rating    int       `json:"rating"`
	Body      string    `json:"body,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToReviewResponse maps a domain review to its wire form.
func ToReviewResponse(review model.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
		Body:      review.Body,
		CreatedAt: review.CreatedAt,
	}
}
