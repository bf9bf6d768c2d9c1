package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/brightstore/store_api/internal/models"
)

// BannerRepository handles data access for storefront banners.
type BannerRepository struct {
	db *sqlx.DB
}

// NewBannerRepository creates a new BannerRepository.
func NewBannerRepository(db *sqlx.DB) *BannerRepository {
	return &BannerRepository{db: db}
}

// GetActive returns active banners in display order.
func (r *BannerRepository) GetActive() ([]models.Banner, error) {
	const q = `SELECT * FROM banners WHERE active = true ORDER BY display_order ASC`
	var banners []models.Banner
	if err := r.db.Select(&banners, q); err != nil {
		return nil, err
	}
	return banners, nil
}

// GetAll returns all banners in display order. Admin view.
func (r *BannerRepository) GetAll() ([]models.Banner, error) {
	const q = `SELECT * FROM banners ORDER BY display_order ASC`
	var banners []models.Banner
	if err := r.db.Select(&banners, q); err != nil {
		return nil, err
	}
	return banners, nil
}

// Create inserts a new banner.
func (r *BannerRepository) Create(banner *models.Banner) error {
	const q = `
        INSERT INTO banners (title, image_url, link, active, display_order)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.db.QueryRowx(q,
		banner.Title,
		banner.ImageURL,
		banner.Link,
		banner.Active,
		banner.DisplayOrder,
	).Scan(&banner.ID, &banner.CreatedAt)
}

// SetActive toggles the active flag.
func (r *BannerRepository) SetActive(id int, active bool) error {
	const q = `UPDATE banners SET active = $2 WHERE id = $1`
	res, err := r.db.Exec(q, id, active)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a banner by ID.
func (r *BannerRepository) Delete(id int) error {
	const q = `DELETE FROM banners WHERE id = $1`
	res, err := r.db.Exec(q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
