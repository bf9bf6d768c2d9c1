package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/brightstore/store_api/internal/models"
)

// OfferRepository handles data access for promotional offers.
type OfferRepository struct {
	db *sqlx.DB
}

// NewOfferRepository creates a new OfferRepository.
func NewOfferRepository(db *sqlx.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// GetActive returns active offers.
func (r *OfferRepository) GetActive() ([]models.Offer, error) {
	const q = `SELECT * FROM offers WHERE active = true ORDER BY created_at DESC`
	var offers []models.Offer
	if err := r.db.Select(&offers, q); err != nil {
		return nil, err
	}
	return offers, nil
}

// GetAll returns all offers. Admin view.
func (r *OfferRepository) GetAll() ([]models.Offer, error) {
	const q = `SELECT * FROM offers ORDER BY created_at DESC`
	var offers []models.Offer
	if err := r.db.Select(&offers, q); err != nil {
		return nil, err
	}
	return offers, nil
}

// Create inserts a new offer.
func (r *OfferRepository) Create(offer *models.Offer) error {
	const q = `
        INSERT INTO offers (title, description, code, discount_percentage, active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.db.QueryRowx(q,
		offer.Title,
		offer.Description,
		offer.Code,
		offer.DiscountPercentage,
		offer.Active,
	).Scan(&offer.ID, &offer.CreatedAt)
}

// Delete removes an offer by ID.
func (r *OfferRepository) Delete(id int) error {
	const q = `DELETE FROM offers WHERE id = $1`
	res, err := r.db.Exec(q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
