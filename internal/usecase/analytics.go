package usecase

import (
	"context"
	"time"

	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
)

const (
	defaultSalesWindow     = 30 * 24 * time.Hour
	defaultTopProductLimit = 10
)

// AnalyticsUseCase serves admin sales dashboards.
type AnalyticsUseCase struct {
	analytics repository.AnalyticsRepository
	now       func() time.Time
}

// NewAnalyticsUseCase constructs AnalyticsUseCase.
func NewAnalyticsUseCase(analytics repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analytics: analytics, now: time.Now}
}

// SalesByDay returns daily order counts and revenue. A zero window defaults
// to the trailing 30 days.
func (u *AnalyticsUseCase) SalesByDay(ctx context.Context, from, to time.Time) ([]model.SalesPoint, error) {
	if to.IsZero() {
		to = u.now()
	}
	if from.IsZero() {
		from = to.Add(-defaultSalesWindow)
	}
	return u.analytics.SalesByDay(ctx, from, to)
}

// TopProducts returns best sellers by units sold.
func (u *AnalyticsUseCase) TopProducts(ctx context.Context, limit int) ([]model.ProductSales, error) {
	if limit <= 0 {
		limit = defaultTopProductLimit
	}
	return u.analytics.TopProducts(ctx, limit)
}
