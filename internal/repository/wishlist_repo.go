package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/brightstore/store_api/internal/models"
)

// WishlistRepository handles data access for customer wishlists.
type WishlistRepository struct {
	db *sqlx.DB
}

// NewWishlistRepository creates a new WishlistRepository.
func NewWishlistRepository(db *sqlx.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// GetProductIDs returns the wishlisted product ids for a customer.
func (r *WishlistRepository) GetProductIDs(userID string) ([]int, error) {
	const q = `SELECT product_id FROM wishlist WHERE user_id = $1 ORDER BY created_at DESC`
	var ids []int
	if err := r.db.Select(&ids, q, userID); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetProducts returns the full product records on a customer's wishlist.
func (r *WishlistRepository) GetProducts(userID string) ([]models.Product, error) {
	const q = `
        SELECT p.* FROM products p
        JOIN wishlist w ON w.product_id = p.id
        WHERE w.user_id = $1
        ORDER BY w.created_at DESC`

	var products []models.Product
	if err := r.db.Select(&products, q, userID); err != nil {
		return nil, err
	}
	return products, nil
}

// Add saves a product to the wishlist. Re-adding is a no-op.
func (r *WishlistRepository) Add(userID string, productID int) error {
	const q = `
        INSERT INTO wishlist (user_id, product_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, product_id) DO NOTHING`
	_, err := r.db.Exec(q, userID, productID)
	return err
}

// Remove deletes a product from the wishlist.
func (r *WishlistRepository) Remove(userID string, productID int) error {
	const q = `DELETE FROM wishlist WHERE user_id = $1 AND product_id = $2`
	_, err := r.db.Exec(q, userID, productID)
	return err
}
