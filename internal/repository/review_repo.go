package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/brightstore/store_api/internal/models"
)

// ReviewRepository handles data access for product reviews.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// GetByProduct returns reviews for a product with the reviewer's name, newest first.
func (r *ReviewRepository) GetByProduct(productID int) ([]models.Review, error) {
	const q = `
        SELECT rv.id, rv.product_id, rv.user_id, rv.rating, rv.comment, rv.created_at,
               COALESCE(p.full_name, 'Customer') AS reviewer_name
        FROM reviews rv
        LEFT JOIN profiles p ON p.id = rv.user_id
        WHERE rv.product_id = $1
        ORDER BY rv.created_at DESC`

	var reviews []models.Review
	if err := r.db.Select(&reviews, q, productID); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create inserts a review.
func (r *ReviewRepository) Create(review *models.Review) error {
	const q = `
        INSERT INTO reviews (product_id, user_id, rating, comment)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.db.QueryRowx(q,
		review.ProductID,
		review.UserID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
}
