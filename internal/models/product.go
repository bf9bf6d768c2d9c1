package models

import "time"

// Product represents a catalog product. Prices are per unit weight (kg).
// Fields are tagged for both DB scanning and JSON serialization.
type Product struct {
	ID                   int       `db:"id" json:"id"`
	Name                 string    `db:"name" json:"name"`
	Description          string    `db:"description" json:"description"`
	Price                float64   `db:"price" json:"price"`
	WholesalePrice       float64   `db:"wholesale_price" json:"wholesalePrice"`
	MinWholesaleQuantity float64   `db:"min_wholesale_quantity" json:"minWholesaleQuantity"`
	Category             string    `db:"category" json:"category"`
	ImageURL             string    `db:"image_url" json:"imageUrl"`
	StockQuantity        float64   `db:"stock_quantity" json:"stockQuantity"`
	CreatedAt            time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time `db:"updated_at" json:"-"`
}
