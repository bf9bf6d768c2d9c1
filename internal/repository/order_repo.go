package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/brightstore/store_api/internal/models"
)

// OrderRepository handles data access for orders. Orders are never deleted;
// only their status changes after creation.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists a new order snapshot with status pending.
func (r *OrderRepository) Create(order *models.Order) error {
	const q = `
        INSERT INTO orders (user_id, items, total_amount, shipping_address, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q,
		order.UserID,
		order.Items,
		order.TotalAmount,
		order.ShippingAddress,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

// GetByID returns a single order by id.
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	const q = `SELECT * FROM orders WHERE id = $1 LIMIT 1`
	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var o models.Order
	if err := stmt.Get(&o, id); err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByUser returns all orders for a customer, newest first.
func (r *OrderRepository) GetByUser(userID string) ([]models.Order, error) {
	const q = `SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	var orders []models.Order
	if err := r.db.Select(&orders, q, userID); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetAllPaged returns orders with an optional status filter and pagination,
// newest first, together with the total count.
func (r *OrderRepository) GetAllPaged(status string, page, limit int) ([]models.Order, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit

	const baseWhere = `WHERE ($1 = '' OR status = $1)`

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(1) FROM orders `+baseWhere, status); err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	listQuery := `SELECT * FROM orders ` + baseWhere + ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	if err := r.db.Select(&orders, listQuery, status, limit, offset); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus sets the order status.
func (r *OrderRepository) UpdateStatus(id int, status models.OrderStatus) error {
	const q = `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.Exec(q, id, status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
