package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/brightstore/store_api/internal/models"
)

// ProfileRepository handles data access for customer profiles. Identities are
// created by the external auth provider; rows here mirror them.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByID returns a profile by customer id.
func (r *ProfileRepository) GetByID(id string) (*models.Profile, error) {
	const q = `SELECT * FROM profiles WHERE id = $1 LIMIT 1`
	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var p models.Profile
	if err := stmt.Get(&p, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetEmail returns the stored email for a customer, which may be empty.
func (r *ProfileRepository) GetEmail(id string) (string, error) {
	const q = `SELECT COALESCE(email, '') FROM profiles WHERE id = $1`
	var email string
	if err := r.db.Get(&email, q, id); err != nil {
		return "", err
	}
	return email, nil
}

// GetPushToken returns the stored push token for a customer, which may be empty.
func (r *ProfileRepository) GetPushToken(id string) (string, error) {
	const q = `SELECT COALESCE(push_token, '') FROM profiles WHERE id = $1`
	var token string
	if err := r.db.Get(&token, q, id); err != nil {
		return "", err
	}
	return token, nil
}

// GetAllPaged returns customer profiles, newest first, with total count.
func (r *ProfileRepository) GetAllPaged(page, limit int) ([]models.Profile, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM profiles`); err != nil {
		return nil, 0, err
	}

	const q = `SELECT * FROM profiles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	var profiles []models.Profile
	if err := r.db.Select(&profiles, q, limit, offset); err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// Update saves the mutable profile fields for a customer.
func (r *ProfileRepository) Update(p *models.Profile) error {
	const q = `
        UPDATE profiles
        SET full_name = $1, phone = $2, email = $3, address_line1 = $4, address_line2 = $5,
            city = $6, pincode = $7, landmark = $8
        WHERE id = $9`
	_, err := r.db.Exec(q,
		p.FullName, p.Phone, p.Email, p.AddressLine1, p.AddressLine2,
		p.City, p.Pincode, p.Landmark, p.ID,
	)
	return err
}

// SetPushToken stores the push delivery token for a customer.
func (r *ProfileRepository) SetPushToken(id, token string) error {
	const q = `UPDATE profiles SET push_token = $2 WHERE id = $1`
	_, err := r.db.Exec(q, id, token)
	return err
}
