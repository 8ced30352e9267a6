package dto

import "github.com/strandart/shop/internal/domain/model"

// AddressRequest describes a shipping address payload.
type AddressRequest struct {
	Recipient  string `json:"recipient"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

// AddressResponse describes a stored shipping address.
type AddressResponse struct {
	ID         int64  `json:"id"`
	Recipient  string `json:"recipient"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// ToAddressResponse maps a domain address to its wire form.
func ToAddressResponse(address model.Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Recipient:  address.Recipient,
		Line1:      address.Line1,
		Line2:      address.Line2,
		City:       address.City,
		PostalCode: address.PostalCode,
		Phone:      address.Phone,
	}
}
