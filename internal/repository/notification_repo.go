package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/brightstore/store_api/internal/models"
)

// NotificationRepository logs push notifications.
type NotificationRepository struct {
	db *sqlx.DB
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create logs a notification row. Written regardless of delivery outcome.
func (r *NotificationRepository) Create(n *models.Notification) error {
	const q = `
        INSERT INTO notifications (user_id, title, body, data, is_read)
        VALUES ($1, $2, $3, $4, false)
        RETURNING id, created_at`

	return r.db.QueryRowx(q, n.UserID, n.Title, n.Body, n.Data).Scan(&n.ID, &n.CreatedAt)
}

// GetByUser returns a customer's notifications, newest first.
func (r *NotificationRepository) GetByUser(userID string) ([]models.Notification, error) {
	const q = `SELECT * FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	var notifications []models.Notification
	if err := r.db.Select(&notifications, q, userID); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags a notification as read.
func (r *NotificationRepository) MarkRead(id int, userID string) error {
	const q = `UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(q, id, userID)
	return err
}
