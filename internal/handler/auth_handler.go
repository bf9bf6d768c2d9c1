package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/service"
	"github.com/brightstore/store_api/internal/utils"
)

// AuthHandler authenticates console operators.
type AuthHandler struct {
	authSvc *service.AdminAuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authSvc *service.AdminAuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /v1/admin/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Email and password are required")
		return
	}

	token, err := h.authSvc.Login(req.Email, req.Password)
	if err != nil {
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{"token": token})
}

// CreateAdmin handles POST /v1/admin/users (existing admin token required)
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Name     string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "email, name and a password of at least 8 characters are required")
		return
	}

	if err := h.authSvc.CreateAdmin(req.Email, req.Password, req.Name); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create admin user")
		return
	}
	utils.Success(c, 201, "Admin user created", nil)
}
