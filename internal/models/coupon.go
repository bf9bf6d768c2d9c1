package models

import "time"

// DiscountType enumerates the supported coupon discount types.
type DiscountType string

const (
	DiscountFixed      DiscountType = "FIXED"
	DiscountPercentage DiscountType = "PERCENTAGE"
)

// Coupon is a named discount rule applied against an order subtotal.
// Codes are unique and stored uppercase; lookups are case-insensitive.
type Coupon struct {
	ID                int          `db:"id" json:"id"`
	Code              string       `db:"code" json:"code"`
	DiscountType      DiscountType `db:"discount_type" json:"discountType"`
	Value             float64      `db:"value" json:"value"`
	MinOrderAmount    float64      `db:"min_order_amount" json:"minOrderAmount"`
	MaxDiscountAmount *float64     `db:"max_discount_amount" json:"maxDiscountAmount,omitempty"`
	IsActive          bool         `db:"is_active" json:"isActive"`
	UsageLimit        *int         `db:"usage_limit" json:"usageLimit,omitempty"`
	UsedCount         int          `db:"used_count" json:"usedCount"`
	CreatedAt         time.Time    `db:"created_at" json:"createdAt"`
}
