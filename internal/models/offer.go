package models

import "time"

// Offer is a promotional display record; unrelated to orders or coupons.
type Offer struct {
	ID                 int       `db:"id" json:"id"`
	Title              string    `db:"title" json:"title"`
	Description        string    `db:"description" json:"description"`
	Code               string    `db:"code" json:"code"`
	DiscountPercentage float64   `db:"discount_percentage" json:"discountPercentage"`
	Active             bool      `db:"active" json:"active"`
	CreatedAt          time.Time `db:"created_at" json:"-"`
}
