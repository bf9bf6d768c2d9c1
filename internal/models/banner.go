package models

import "time"

// Banner is a promotional display record shown on the storefront carousel.
type Banner struct {
	ID           int       `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	ImageURL     string    `db:"image_url" json:"imageUrl"`
	Link         *string   `db:"link" json:"link,omitempty"`
	Active       bool      `db:"active" json:"active"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
}
