package models

import "time"

// WishlistItem links a customer to a saved product.
type WishlistItem struct {
	UserID    string    `db:"user_id" json:"-"`
	ProductID int       `db:"product_id" json:"productId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
