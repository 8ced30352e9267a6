package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/domain/repository"
	"github.com/strandart/shop/internal/server/http/dto"
)

// CatalogHandler serves the public catalog and admin product management.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products. Visitors see active pieces only; the
// status query parameter is honored on the admin listing.
func (h *CatalogHandler) List(c *gin.Context) {
	filter := repository.ProductFilter{
		Status:   model.ProductStatusActive,
		Category: c.Query("category"),
	}

	products, err := h.facade.Products(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, dto.ToProductResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// ListAdmin handles GET /api/admin/products with an arbitrary status filter.
func (h *CatalogHandler) ListAdmin(c *gin.Context) {
	filter := repository.ProductFilter{
		Status:   model.ProductStatus(c.Query("status")),
		Category: c.Query("category"),
	}

	products, err := h.facade.Products(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, dto.ToProductResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/products/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// Create handles POST /api/admin/products.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Status:      model.ProductStatus(req.Status),
		Categories:  req.Categories,
		Materials:   req.Materials,
		Dimensions:  req.Dimensions,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(*product))
}

// Update handles PUT /api/admin/products/:id. The stock quantity is owned
// by the checkout ledger and is not writable here.
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.UpdateProduct(c.Request.Context(), &model.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Status:      model.ProductStatus(req.Status),
		Categories:  req.Categories,
		Materials:   req.Materials,
		Dimensions:  req.Dimensions,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// SetStatus handles PATCH /api/admin/products/:id/status.
func (h *CatalogHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetProductStatus(c.Request.Context(), id, model.ProductStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// AttachImage handles POST /api/admin/products/:id/images.
func (h *CatalogHandler) AttachImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	imageID, err := h.facade.AttachProductImage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ImageResponse{ImageID: imageID})
}
