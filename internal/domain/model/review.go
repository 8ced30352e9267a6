package model

import "time"

// Review is a customer comment on a product. One review per user per product.
type Review struct {
	ID        int64
	ProductID int64
	UserID    int64
	Rating    int
	Body      string
	CreatedAt time.Time
}
