package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/server/http/dto"
	"github.com/strandart/shop/internal/server/http/middleware"
)

// AuthHandler processes passcode requests, signup, login, and reset.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// RequestPasscode handles POST /api/auth/passcode.
func (h *AuthHandler) RequestPasscode(c *gin.Context) {
	var req dto.PasscodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	purpose := model.PasscodePurpose(req.Purpose)
	if !purpose.IsValid() {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RequestPasscode(c.Request.Context(), req.Email, purpose); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.CompleteSignup(c.Request.Context(), req.Email, req.Name, req.Password, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name, Admin: user.IsAdmin})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name, Admin: user.IsAdmin})
}

// Reset handles POST /api/auth/reset.
func (h *AuthHandler) Reset(c *gin.Context) {
	var req dto.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ResetPassword(c.Request.Context(), req.Email, req.Password, req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
