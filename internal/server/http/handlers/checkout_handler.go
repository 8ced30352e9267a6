package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strandart/shop/internal/server/http/dto"
)

// CheckoutHandler converts carts and buy-now requests into orders.
type CheckoutHandler struct {
	facade interface {
		CheckoutFacade
		AuthFacade
	}
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade StorefrontFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Checkout handles POST /api/checkout.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	email, ok := h.userEmail(c, userID)
	if !ok {
		return
	}

	order, err := h.facade.CheckoutCart(c.Request.Context(), userID, req.AddressID, email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrderResponse(*order))
}

// BuyNow handles POST /api/checkout/buy-now.
func (h *CheckoutHandler) BuyNow(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.BuyNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	email, ok := h.userEmail(c, userID)
	if !ok {
		return
	}

	order, err := h.facade.BuyNow(c.Request.Context(), userID, req.ProductID, req.Quantity, req.AddressID, email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrderResponse(*order))
}

func (h *CheckoutHandler) userEmail(c *gin.Context, userID int64) (string, bool) {
	user, err := h.facade.UserByID(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return "", false
	}
	return user.Email, true
}
