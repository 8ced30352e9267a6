package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
)

// AddressUseCase manages a user's shipping addresses.
type AddressUseCase struct {
	addresses repository.AddressRepository
}

// NewAddressUseCase constructs AddressUseCase.
func NewAddressUseCase(addresses repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{addresses: addresses}
}

// Create stores a new shipping address for the user.
func (u *AddressUseCase) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	if strings.TrimSpace(address.Recipient) == "" ||
		strings.TrimSpace(address.Line1) == "" ||
		strings.TrimSpace(address.City) == "" {
		return nil, domainErrors.ErrInvalidAddress
	}
	return u.addresses.Create(ctx, address)
}

// List returns the user's addresses.
func (u *AddressUseCase) List(ctx context.Context, userID int64) ([]model.Address, error) {
	return u.addresses.ListByUser(ctx, userID)
}

// Delete removes an address owned by the user.
func (u *AddressUseCase) Delete(ctx context.Context, id, userID int64) error {
	return u.addresses.Delete(ctx, id, userID)
}
