package handler

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
)

// ProfileHandler serves the customer's own profile and push-token registration.
type ProfileHandler struct {
	profileRepo *repository.ProfileRepository
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(profileRepo *repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo}
}

// GetProfile handles GET /v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileRepo.GetByID(c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "PROFILE_NOT_FOUND", "Profile not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve profile")
		return
	}
	utils.Success(c, 200, "Profile retrieved", profile)
}

// UpdateProfile handles PUT /v1/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		FullName     string  `json:"fullName" binding:"required"`
		Phone        string  `json:"phone" binding:"required"`
		Email        *string `json:"email"`
		AddressLine1 string  `json:"addressLine1"`
		AddressLine2 string  `json:"addressLine2"`
		City         string  `json:"city"`
		Pincode      string  `json:"pincode"`
		Landmark     *string `json:"landmark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "fullName and phone are required")
		return
	}

	profile := &models.Profile{
		ID:           c.GetString("user_id"),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		Pincode:      req.Pincode,
		Landmark:     req.Landmark,
	}
	if err := h.profileRepo.Update(profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "PROFILE_NOT_FOUND", "Profile not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update profile")
		return
	}
	utils.Success(c, 200, "Profile updated", profile)
}

// RegisterPushToken handles PUT /v1/profile/push-token
func (h *ProfileHandler) RegisterPushToken(c *gin.Context) {
	var req struct {
		PushToken string `json:"pushToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "pushToken is required")
		return
	}

	if err := h.profileRepo.SetPushToken(c.GetString("user_id"), req.PushToken); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save push token")
		return
	}
	utils.Success(c, 200, "Push token saved", nil)
}
