package dto

import "github.com/strandart/shop/internal/domain/model"

// CartLineRequest adds or updates one cart line.
type CartLineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartLineResponse describes one line of the cart with its product snapshot.
type CartLineResponse struct {
	ProductID int64            `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// ToCartLineResponse maps a domain cart line to its wire form.
func ToCartLineResponse(line model.CartLine) CartLineResponse {
	resp := CartLineResponse{
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
	}
	if line.Product != nil {
		product := ToProductResponse(*line.Product)
		resp.Product = &product
	}
	return resp
}
