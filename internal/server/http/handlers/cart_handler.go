package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strandart/shop/internal/server/http/dto"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// List handles GET /api/cart.
func (h *CartHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	lines, err := h.facade.Cart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.CartLineResponse, 0, len(lines))
	for _, line := range lines {
		resp = append(resp, dto.ToCartLineResponse(line))
	}
	c.JSON(http.StatusOK, resp)
}

// Add handles POST /api/cart.
func (h *CartHandler) Add(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.CartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AddToCart(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// SetQuantity handles PUT /api/cart/:productID.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	userID := CurrentUserID(c)
	productID, ok := pathID(c, "productID")
	if !ok {
		return
	}

	var req dto.CartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetCartQuantity(c.Request.Context(), userID, productID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Remove handles DELETE /api/cart/:productID.
func (h *CartHandler) Remove(c *gin.Context) {
	userID := CurrentUserID(c)
	productID, ok := pathID(c, "productID")
	if !ok {
		return
	}

	if err := h.facade.RemoveFromCart(c.Request.Context(), userID, productID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	userID := CurrentUserID(c)
	if err := h.facade.ClearCart(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
