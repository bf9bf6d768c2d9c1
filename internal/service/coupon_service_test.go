package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightstore/store_api/internal/models"
)

func fixedCoupon(value, minOrder float64) *models.Coupon {
	return &models.Coupon{
		Code:           "SAVE10",
		DiscountType:   models.DiscountFixed,
		Value:          value,
		MinOrderAmount: minOrder,
		IsActive:       true,
	}
}

func TestComputeDiscountFixed(t *testing.T) {
	coupon := fixedCoupon(10, 50)

	result := ComputeDiscount(coupon, 60)
	assert.True(t, result.Valid)
	assert.Equal(t, 10.0, result.Discount)
	assert.Equal(t, "Coupon applied successfully!", result.Message)
}

func TestComputeDiscountBelowMinOrder(t *testing.T) {
	coupon := fixedCoupon(10, 50)

	result := ComputeDiscount(coupon, 40)
	assert.False(t, result.Valid)
	assert.Equal(t, 0.0, result.Discount)
	assert.Equal(t, "Minimum order amount of ₹50 required.", result.Message)
}

func TestComputeDiscountPercentage(t *testing.T) {
	coupon := &models.Coupon{
		Code:         "TEN",
		DiscountType: models.DiscountPercentage,
		Value:        10,
		IsActive:     true,
	}

	result := ComputeDiscount(coupon, 200)
	assert.True(t, result.Valid)
	assert.Equal(t, 20.0, result.Discount)
}

func TestComputeDiscountPercentageCapped(t *testing.T) {
	cap := 20.0
	coupon := &models.Coupon{
		Code:              "TEN",
		DiscountType:      models.DiscountPercentage,
		Value:             10,
		MaxDiscountAmount: &cap,
		IsActive:          true,
	}

	// 10% of 500 is 50, capped at 20
	result := ComputeDiscount(coupon, 500)
	assert.True(t, result.Valid)
	assert.Equal(t, 20.0, result.Discount)

	// below the cap the raw percentage applies
	result = ComputeDiscount(coupon, 150)
	assert.True(t, result.Valid)
	assert.Equal(t, 15.0, result.Discount)
}

func TestComputeDiscountUsageLimitReached(t *testing.T) {
	limit := 1
	coupon := fixedCoupon(10, 0)
	coupon.UsageLimit = &limit
	coupon.UsedCount = 1

	result := ComputeDiscount(coupon, 1000)
	assert.False(t, result.Valid)
	assert.Equal(t, "Coupon usage limit reached.", result.Message)
}

func TestComputeDiscountUsageLimitRemaining(t *testing.T) {
	limit := 5
	coupon := fixedCoupon(10, 0)
	coupon.UsageLimit = &limit
	coupon.UsedCount = 4

	result := ComputeDiscount(coupon, 100)
	assert.True(t, result.Valid)
}

func TestComputeDiscountUnknownType(t *testing.T) {
	coupon := &models.Coupon{
		Code:         "ODD",
		DiscountType: models.DiscountType("BOGOF"),
		Value:        1,
		IsActive:     true,
	}

	result := ComputeDiscount(coupon, 100)
	assert.False(t, result.Valid)
}
