package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/strandart/shop/internal/domain/model"
)

// CheckoutRequest converts the cart into an order.
type CheckoutRequest struct {
	AddressID int64 `json:"address_id"`
}

// BuyNowRequest purchases a single product directly.
type BuyNowRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
	AddressID int64 `json:"address_id"`
}

// OrderStatusRequest moves an order to a new fulfilment status.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is the purchase-time snapshot of one product.
type OrderItemResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// OrderResponse describes a committed order.
type OrderResponse struct {
	ID        int64               `json:"id"`
	Reference string              `json:"reference"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	AddressID int64               `json:"address_id"`
	CreatedAt time.Time           `json:"created_at"`
	Items     []OrderItemResponse `json:"items,omitempty"`
}

// ToOrderResponse maps a domain order to its wire form.
func ToOrderResponse(order model.Order) OrderResponse {
	resp := OrderResponse{
		ID:        order.ID,
		Reference: order.Reference,
		Status:    string(order.Status),
		Total:     order.Total,
		AddressID: order.AddressID,
		CreatedAt: order.CreatedAt,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return resp
}
