package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strandart/shop/internal/server/http/dto"
)

// ReviewHandler manages product reviews.
type ReviewHandler struct {
	facade ReviewFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// ListByProduct handles GET /api/products/:id/reviews.
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.facade.Reviews(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/products/:id/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), userID, productID, req.Rating, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToReviewResponse(*review))
}

// Delete handles DELETE /api/reviews/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID := CurrentUserID(c)
	reviewID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteReview(c.Request.Context(), reviewID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
