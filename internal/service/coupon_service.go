package service

import (
	"fmt"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
)

// ValidationResult is the outcome of validating a coupon against an order amount.
type ValidationResult struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"`
	Message  string  `json:"message"`
}

// CouponService computes discount eligibility for coupon codes.
type CouponService struct {
	couponRepo *repository.CouponRepository
}

// NewCouponService constructs a CouponService.
func NewCouponService(couponRepo *repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// Validate looks up a coupon by case-insensitive code and computes the
// discount for orderAmount. A missing or inactive coupon is invalid with a
// zero discount.
func (s *CouponService) Validate(code string, orderAmount float64) ValidationResult {
	coupon, err := s.couponRepo.GetActiveByCode(code)
	if err != nil || coupon == nil {
		return ValidationResult{Valid: false, Discount: 0, Message: "Invalid or expired coupon code."}
	}
	return ComputeDiscount(coupon, orderAmount)
}

// MarkUsed bumps the usage counter after a checkout that applied the coupon.
func (s *CouponService) MarkUsed(code string) error {
	return s.couponRepo.IncrementUsage(code)
}

// ComputeDiscount applies the discount rules for an already-loaded coupon:
// usage limit, minimum order amount, then FIXED value or PERCENTAGE of the
// order amount capped at MaxDiscountAmount when set.
func ComputeDiscount(c *models.Coupon, orderAmount float64) ValidationResult {
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return ValidationResult{Valid: false, Discount: 0, Message: "Coupon usage limit reached."}
	}

	if orderAmount < c.MinOrderAmount {
		return ValidationResult{
			Valid:    false,
			Discount: 0,
			Message:  fmt.Sprintf("Minimum order amount of ₹%g required.", c.MinOrderAmount),
		}
	}

	var discount float64
	switch c.DiscountType {
	case models.DiscountFixed:
		discount = c.Value
	case models.DiscountPercentage:
		discount = orderAmount * c.Value / 100
		if c.MaxDiscountAmount != nil && discount > *c.MaxDiscountAmount {
			discount = *c.MaxDiscountAmount
		}
	default:
		return ValidationResult{Valid: false, Discount: 0, Message: "Invalid or expired coupon code."}
	}

	return ValidationResult{Valid: true, Discount: discount, Message: "Coupon applied successfully!"}
}
