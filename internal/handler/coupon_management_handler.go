package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
)

// CouponManagementHandler covers the admin coupon panel.
type CouponManagementHandler struct {
	couponRepo *repository.CouponRepository
}

// NewCouponManagementHandler constructs a CouponManagementHandler.
func NewCouponManagementHandler(couponRepo *repository.CouponRepository) *CouponManagementHandler {
	return &CouponManagementHandler{couponRepo: couponRepo}
}

// ListCoupons handles GET /v1/admin/coupons
func (h *CouponManagementHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.couponRepo.GetAll()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve coupons")
		return
	}
	utils.Success(c, 200, "Coupons retrieved", coupons)
}

// CreateCoupon handles POST /v1/admin/coupons
func (h *CouponManagementHandler) CreateCoupon(c *gin.Context) {
	var req struct {
		Code              string   `json:"code" binding:"required"`
		DiscountType      string   `json:"discountType" binding:"required,oneof=FIXED PERCENTAGE"`
		Value             float64  `json:"value" binding:"required,gt=0"`
		MinOrderAmount    float64  `json:"minOrderAmount"`
		MaxDiscountAmount *float64 `json:"maxDiscountAmount"`
		UsageLimit        *int     `json:"usageLimit"`
		IsActive          *bool    `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "code, discountType and a positive value are required")
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	coupon := &models.Coupon{
		Code:              strings.ToUpper(strings.TrimSpace(req.Code)),
		DiscountType:      models.DiscountType(req.DiscountType),
		Value:             req.Value,
		MinOrderAmount:    req.MinOrderAmount,
		MaxDiscountAmount: req.MaxDiscountAmount,
		UsageLimit:        req.UsageLimit,
		IsActive:          active,
	}
	if err := h.couponRepo.Create(coupon); err != nil {
		if errors.Is(err, utils.ErrCouponExists) {
			utils.Error(c, 409, "COUPON_EXISTS", "A coupon with this code already exists")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save coupon")
		return
	}
	utils.Success(c, 201, "Coupon created", coupon)
}

// SetCouponActive handles PATCH /v1/admin/coupons/:id/active
func (h *CouponManagementHandler) SetCouponActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid coupon ID")
		return
	}

	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "isActive is required")
		return
	}

	if err := h.couponRepo.SetActive(id, *req.IsActive); err != nil {
		utils.Error(c, 404, "COUPON_NOT_FOUND", "Coupon not found")
		return
	}
	utils.Success(c, 200, "Coupon updated", nil)
}

// DeleteCoupon handles DELETE /v1/admin/coupons/:id
func (h *CouponManagementHandler) DeleteCoupon(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid coupon ID")
		return
	}

	if err := h.couponRepo.Delete(id); err != nil {
		utils.Error(c, 404, "COUPON_NOT_FOUND", "Coupon not found")
		return
	}
	utils.Success(c, 200, "Coupon deleted", nil)
}
