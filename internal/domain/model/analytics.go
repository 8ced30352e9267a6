package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesPoint aggregates revenue for a single day. Cancelled orders are excluded.
type SalesPoint struct {
	Day     time.Time
	Orders  int64
	Revenue decimal.Decimal
}

// ProductSales aggregates units sold and revenue per product.
type ProductSales struct {
	ProductID   int64
	ProductName string
	Units       int64
	Revenue     decimal.Decimal
}
