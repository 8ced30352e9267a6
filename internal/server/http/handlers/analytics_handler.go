package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/strandart/shop/internal/server/http/dto"
)

// AnalyticsHandler serves the admin sales dashboards.
type AnalyticsHandler struct {
	facade AnalyticsFacade
}

// NewAnalyticsHandler constructs AnalyticsHandler.
func NewAnalyticsHandler(facade AnalyticsFacade) *AnalyticsHandler {
	return &AnalyticsHandler{facade: facade}
}

// Sales handles GET /api/admin/analytics/sales?from=&to= (RFC 3339).
func (h *AnalyticsHandler) Sales(c *gin.Context) {
	from, ok := parseTimeQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseTimeQuery(c, "to")
	if !ok {
		return
	}

	points, err := h.facade.SalesByDay(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.SalesPointResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, dto.ToSalesPointResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// TopProducts handles GET /api/admin/analytics/top-products?limit=.
func (h *AnalyticsHandler) TopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	rows, err := h.facade.TopProducts(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.TopProductResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.ToTopProductResponse(row))
	}
	c.JSON(http.StatusOK, resp)
}

func parseTimeQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return time.Time{}, false
	}
	return parsed, true
}
