package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "PENDING"
	OrderStatusNoticed     OrderStatus = "NOTICED"
	OrderStatusWorking     OrderStatus = "WORKING"
	OrderStatusReadyToShip OrderStatus = "READYTOSHIP"
	OrderStatusShipped     OrderStatus = "SHIPPED"
	OrderStatusDelivered   OrderStatus = "DELIVERED"
	OrderStatusCancelled   OrderStatus = "CANCELLED"
)

// IsValid reports whether the status is a known fulfilment state.
// Any valid status may follow any other; there is no transition graph.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusNoticed, OrderStatusWorking,
		OrderStatusReadyToShip, OrderStatusShipped, OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a committed purchase. Total is fixed at creation from the item
// snapshots and is never recomputed, even if product prices change later.
type Order struct {
	ID        int64
	Reference string
	UserID    int64
	AddressID int64
	Status    OrderStatus
	Total     decimal.Decimal
	CreatedAt time.Time
	Items     []OrderItem
}

// OrderItem is an immutable snapshot of a product at purchase time.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}
