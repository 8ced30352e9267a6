package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/server/http/dto"
)

// OrderHandler serves the customer's order history and the admin
// fulfilment endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.Orders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), userID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// ListAdmin handles GET /api/admin/orders?status=&limit=.
func (h *OrderHandler) ListAdmin(c *gin.Context) {
	status := model.OrderStatus(c.DefaultQuery("status", string(model.OrderStatusPending)))
	limit, _ := strconv.Atoi(c.Query("limit"))

	orders, err := h.facade.OrdersByStatus(c.Request.Context(), status, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// GetAdmin handles GET /api/admin/orders/:id.
func (h *OrderHandler) GetAdmin(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.OrderAny(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(*order))
}

// SetStatus handles PATCH /api/admin/orders/:id/status. Moving an order in
// or out of CANCELLED reconciles the stock ledger in the same transaction.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetOrderStatus(c.Request.Context(), orderID, model.OrderStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
