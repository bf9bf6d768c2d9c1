package repository

import (
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/utils"
)

// CouponRepository handles data access for coupons.
type CouponRepository struct {
	db *sqlx.DB
}

// NewCouponRepository creates a new CouponRepository.
func NewCouponRepository(db *sqlx.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

// GetAll returns all coupons, newest first.
func (r *CouponRepository) GetAll() ([]models.Coupon, error) {
	const q = `SELECT * FROM coupons ORDER BY created_at DESC`
	var coupons []models.Coupon
	if err := r.db.Select(&coupons, q); err != nil {
		return nil, err
	}
	return coupons, nil
}

// GetActiveByCode returns the active coupon for a code. Lookup is
// case-insensitive; codes are stored uppercase.
func (r *CouponRepository) GetActiveByCode(code string) (*models.Coupon, error) {
	const q = `SELECT * FROM coupons WHERE code = $1 AND is_active = true LIMIT 1`
	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var c models.Coupon
	if err := stmt.Get(&c, strings.ToUpper(strings.TrimSpace(code))); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create creates a new coupon. The code is uppercased before insert.
func (r *CouponRepository) Create(coupon *models.Coupon) error {
	const q = `
        INSERT INTO coupons (code, discount_type, value, min_order_amount, max_discount_amount, is_active, usage_limit)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, used_count, created_at`

	err := r.db.QueryRowx(q,
		strings.ToUpper(strings.TrimSpace(coupon.Code)),
		coupon.DiscountType,
		coupon.Value,
		coupon.MinOrderAmount,
		coupon.MaxDiscountAmount,
		coupon.IsActive,
		coupon.UsageLimit,
	).Scan(&coupon.ID, &coupon.UsedCount, &coupon.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return utils.ErrCouponExists
		}
		return err
	}
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	return nil
}

// IncrementUsage bumps used_count after a successful checkout with the coupon applied.
func (r *CouponRepository) IncrementUsage(code string) error {
	const q = `UPDATE coupons SET used_count = used_count + 1 WHERE code = $1`
	_, err := r.db.Exec(q, strings.ToUpper(strings.TrimSpace(code)))
	return err
}

// SetActive toggles the active flag.
func (r *CouponRepository) SetActive(id int, active bool) error {
	const q = `UPDATE coupons SET is_active = $2 WHERE id = $1`
	res, err := r.db.Exec(q, id, active)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete deletes a coupon by ID.
func (r *CouponRepository) Delete(id int) error {
	const q = `DELETE FROM coupons WHERE id = $1`
	res, err := r.db.Exec(q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
