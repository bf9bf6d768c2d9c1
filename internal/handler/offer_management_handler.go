package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
)

// OfferManagementHandler covers the admin offers panel. Offers are display
// records only; the code shown on an offer is redeemed through coupons.
type OfferManagementHandler struct {
	offerRepo *repository.OfferRepository
}

// NewOfferManagementHandler constructs an OfferManagementHandler.
func NewOfferManagementHandler(offerRepo *repository.OfferRepository) *OfferManagementHandler {
	return &OfferManagementHandler{offerRepo: offerRepo}
}

// ListOffers handles GET /v1/admin/offers (includes inactive)
func (h *OfferManagementHandler) ListOffers(c *gin.Context) {
	offers, err := h.offerRepo.GetAll()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve offers")
		return
	}
	utils.Success(c, 200, "Offers retrieved", offers)
}

// CreateOffer handles POST /v1/admin/offers
func (h *OfferManagementHandler) CreateOffer(c *gin.Context) {
	var req struct {
		Title              string  `json:"title" binding:"required"`
		Description        string  `json:"description"`
		Code               string  `json:"code"`
		DiscountPercentage float64 `json:"discountPercentage"`
		Active             *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "title is required")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	offer := &models.Offer{
		Title:              req.Title,
		Description:        req.Description,
		Code:               req.Code,
		DiscountPercentage: req.DiscountPercentage,
		Active:             active,
	}
	if err := h.offerRepo.Create(offer); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save offer")
		return
	}
	utils.Success(c, 201, "Offer created", offer)
}

// DeleteOffer handles DELETE /v1/admin/offers/:id
func (h *OfferManagementHandler) DeleteOffer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid offer ID")
		return
	}

	if err := h.offerRepo.Delete(id); err != nil {
		utils.Error(c, 404, "OFFER_NOT_FOUND", "Offer not found")
		return
	}
	utils.Success(c, 200, "Offer deleted", nil)
}
