package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/strandart/shop/internal/domain/errors"
	"github.com/strandart/shop/internal/server/http/dto"
	"github.com/strandart/shop/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// respondError maps domain failures onto HTTP statuses. Insufficient stock
// gets a body naming the offending products; everything else answers with
// a short error message.
func respondError(c *gin.Context, err error) {
	var insufficient *domainErrors.InsufficientStockError
	if errors.As(err, &insufficient) {
		c.JSON(http.StatusConflict, dto.InsufficientStockResponse{
			Error:    "insufficient stock",
			Products: insufficient.Products,
		})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, domainErrors.ErrNotFound),
		errors.Is(err, domainErrors.ErrProductNotFound),
		errors.Is(err, domainErrors.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "already exists"})
	case errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrInvalidProduct),
		errors.Is(err, domainErrors.ErrInvalidRating),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidAddress),
		errors.Is(err, domainErrors.ErrInvalidPasscode),
		errors.Is(err, domainErrors.ErrPasscodeExpired),
		errors.Is(err, domainErrors.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}
