package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
)

// AddressHandler manages a customer's saved delivery addresses.
type AddressHandler struct {
	addressRepo *repository.AddressRepository
}

// NewAddressHandler constructs an AddressHandler.
func NewAddressHandler(addressRepo *repository.AddressRepository) *AddressHandler {
	return &AddressHandler{addressRepo: addressRepo}
}

type addressRequest struct {
	Label        string  `json:"label"`
	FullName     string  `json:"fullName" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	AddressLine1 string  `json:"addressLine1" binding:"required"`
	AddressLine2 *string `json:"addressLine2"`
	City         string  `json:"city" binding:"required"`
	State        string  `json:"state" binding:"required"`
	Pincode      string  `json:"pincode" binding:"required"`
	Landmark     *string `json:"landmark"`
	IsDefault    bool    `json:"isDefault"`
}

// ListAddresses handles GET /v1/addresses
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	addresses, err := h.addressRepo.GetByUser(c.GetString("user_id"))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve addresses")
		return
	}
	utils.Success(c, 200, "Addresses retrieved", addresses)
}

// CreateAddress handles POST /v1/addresses
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Missing required address fields")
		return
	}

	address := &models.Address{
		UserID:       c.GetString("user_id"),
		Label:        req.Label,
		FullName:     req.FullName,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		Landmark:     req.Landmark,
		IsDefault:    req.IsDefault,
	}
	if err := h.addressRepo.Create(address); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save address")
		return
	}
	utils.Success(c, 201, "Address saved", address)
}

// UpdateAddress handles PUT /v1/addresses/:id
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid address ID")
		return
	}

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Missing required address fields")
		return
	}

	address := &models.Address{
		ID:           id,
		UserID:       c.GetString("user_id"),
		Label:        req.Label,
		FullName:     req.FullName,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		Landmark:     req.Landmark,
		IsDefault:    req.IsDefault,
	}
	if err := h.addressRepo.Update(address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "ADDRESS_NOT_FOUND", "Address not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update address")
		return
	}
	utils.Success(c, 200, "Address updated", address)
}

// DeleteAddress handles DELETE /v1/addresses/:id
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid address ID")
		return
	}

	if err := h.addressRepo.Delete(id, c.GetString("user_id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "ADDRESS_NOT_FOUND", "Address not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete address")
		return
	}
	utils.Success(c, 200, "Address deleted", nil)
}
