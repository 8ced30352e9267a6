package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/strandart/shop/internal/domain/model"
)

// SalesPointResponse is one day of the sales report.
type SalesPointResponse struct {
	Day     time.Time       `json:"day"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TopProductResponse is one row of the best-seller report.
type TopProductResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Units       int64           `json:"units"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// ToSalesPointResponse maps a domain sales point to its wire form.
func ToSalesPointResponse(point model.SalesPoint) SalesPointResponse {
	return SalesPointResponse{Day: point.Day, Orders: point.Orders, Revenue: point.Revenue}
}

// ToTopProductResponse maps a domain best-seller row to its wire form.
func ToTopProductResponse(row model.ProductSales) TopProductResponse {
	return TopProductResponse{
		ProductID:   row.ProductID,
		ProductName: row.ProductName,
		Units:       row.Units,
		Revenue:     row.Revenue,
	}
}
