package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/strandart/shop/internal/domain/model"
)

// ProductRequest describes catalog create/update payload.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Status      string          `json:"status"`
	Categories  []string        `json:"categories"`
	Materials   []string        `json:"materials"`
	Dimensions  string          `json:"dimensions"`
}

// ProductStatusRequest moves a product through its lifecycle.
type ProductStatusRequest struct {
	Status string `json:"status"`
}

// ProductResponse describes a catalog entry.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Status      string          `json:"status"`
	Categories  []string        `json:"categories,omitempty"`
	Materials   []string        `json:"materials,omitempty"`
	Dimensions  string          `json:"dimensions,omitempty"`
	Images      []string        `json:"images,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToProductResponse maps the domain product to its wire form.
func ToProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Status:      string(p.Status),
		Categories:  p.Categories,
		Materials:   p.Materials,
		Dimensions:  p.Dimensions,
		Images:      p.Images,
		CreatedAt:   p.CreatedAt,
	}
}

// ImageResponse returns the identifier of a freshly attached gallery image.
type ImageResponse struct {
	ImageID string `json:"image_id"`
}
