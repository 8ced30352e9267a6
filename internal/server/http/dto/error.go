package dto

// ErrorResponse carries a short machine-readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// InsufficientStockResponse names the products that blocked a checkout.
type InsufficientStockResponse struct {
	Error    string   `json:"error"`
	Products []string `json:"products"`
}
