package models

import "time"

// Review is a customer product review, joined with the reviewer's name for display.
type Review struct {
	ID           int       `db:"id" json:"id"`
	ProductID    int       `db:"product_id" json:"productId"`
	UserID       string    `db:"user_id" json:"-"`
	Rating       int       `db:"rating" json:"rating"`
	Comment      string    `db:"comment" json:"comment"`
	ReviewerName string    `db:"reviewer_name" json:"reviewerName"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
