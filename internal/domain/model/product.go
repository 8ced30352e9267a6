package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus describes catalog visibility lifecycle.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusArchived ProductStatus = "archived"
	ProductStatusDraft    ProductStatus = "draft"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusArchived, ProductStatusDraft:
		return true
	}
	return false
}

// Product describes a handcrafted piece in the gallery catalog.
// Quantity is the stock ledger: it is mutated only by checkout and by
// order cancellation reconciliation.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Status      ProductStatus
	Categories  []string
	Materials   []string
	Dimensions  string
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
