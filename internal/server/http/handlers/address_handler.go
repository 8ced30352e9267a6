package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/server/http/dto"
)

// AddressHandler manages the user's shipping addresses.
type AddressHandler struct {
	facade AddressFacade
}

// NewAddressHandler constructs AddressHandler.
func NewAddressHandler(facade AddressFacade) *AddressHandler {
	return &AddressHandler{facade: facade}
}

// List handles GET /api/addresses.
func (h *AddressHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	addresses, err := h.facade.Addresses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		resp = append(resp, dto.ToAddressResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/addresses.
func (h *AddressHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	address, err := h.facade.CreateAddress(c.Request.Context(), &model.Address{
		UserID:     userID,
		Recipient:  req.Recipient,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAddressResponse(*address))
}

// Delete handles DELETE /api/addresses/:id.
func (h *AddressHandler) Delete(c *gin.Context) {
	userID := CurrentUserID(c)
	addressID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteAddress(c.Request.Context(), addressID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
