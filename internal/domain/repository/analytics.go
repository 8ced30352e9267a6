package repository

import (
	"context"
	"time"

	"github.com/strandart/shop/internal/domain/model"
)

// AnalyticsRepository exposes read-only sales aggregates. Cancelled orders
// are excluded from every aggregate.
type AnalyticsRepository interface {
	SalesByDay(ctx context.Context, from, to time.Time) ([]model.SalesPoint, error)
	TopProducts(ctx context.Context, limit int) ([]model.ProductSales, error)
}
