package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/brightstore/store_api/internal/models"
)

// AddressRepository handles data access for delivery addresses.
type AddressRepository struct {
	db *sqlx.DB
}

// NewAddressRepository creates a new AddressRepository.
func NewAddressRepository(db *sqlx.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

// GetByUser returns a customer's addresses, default first.
func (r *AddressRepository) GetByUser(userID string) ([]models.Address, error) {
	const q = `SELECT * FROM addresses WHERE user_id = $1 ORDER BY is_default DESC, created_at DESC`
	var addresses []models.Address
	if err := r.db.Select(&addresses, q, userID); err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetByID returns a single address scoped to its owner.
func (r *AddressRepository) GetByID(id int, userID string) (*models.Address, error) {
	const q = `SELECT * FROM addresses WHERE id = $1 AND user_id = $2 LIMIT 1`
	var a models.Address
	if err := r.db.Get(&a, q, id, userID); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts an address. When the new address is marked default, all other
// defaults for the owner are unset in the same transaction so that at most one
// default exists per user.
func (r *AddressRepository) Create(address *models.Address) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if address.IsDefault {
		if _, err := tx.Exec(`UPDATE addresses SET is_default = false WHERE user_id = $1`, address.UserID); err != nil {
			return err
		}
	}

	const q = `
        INSERT INTO addresses (user_id, label, full_name, phone, address_line1, address_line2, city, state, pincode, landmark, is_default)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at`

	if err := tx.QueryRowx(q,
		address.UserID,
		address.Label,
		address.FullName,
		address.Phone,
		address.AddressLine1,
		address.AddressLine2,
		address.City,
		address.State,
		address.Pincode,
		address.Landmark,
		address.IsDefault,
	).Scan(&address.ID, &address.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

// Update replaces an address. The one-default-per-user invariant is enforced
// the same way as on insert.
func (r *AddressRepository) Update(address *models.Address) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if address.IsDefault {
		if _, err := tx.Exec(`UPDATE addresses SET is_default = false WHERE user_id = $1 AND id <> $2`,
			address.UserID, address.ID); err != nil {
			return err
		}
	}

	const q = `
        UPDATE addresses
        SET label = $1, full_name = $2, phone = $3, address_line1 = $4, address_line2 = $5,
            city = $6, state = $7, pincode = $8, landmark = $9, is_default = $10
        WHERE id = $11 AND user_id = $12`

	res, err := tx.Exec(q,
		address.Label,
		address.FullName,
		address.Phone,
		address.AddressLine1,
		address.AddressLine2,
		address.City,
		address.State,
		address.Pincode,
		address.Landmark,
		address.IsDefault,
		address.ID,
		address.UserID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

// Delete removes an address scoped to its owner.
func (r *AddressRepository) Delete(id int, userID string) error {
	const q = `DELETE FROM addresses WHERE id = $1 AND user_id = $2`
	res, err := r.db.Exec(q, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
