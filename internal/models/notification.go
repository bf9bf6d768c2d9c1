package models

import (
	"encoding/json"
	"time"
)

// Notification is a logged push notification. Rows are written regardless of
// delivery outcome.
type Notification struct {
	ID        int             `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"userId"`
	Title     string          `db:"title" json:"title"`
	Body      string          `db:"body" json:"body"`
	Data      json.RawMessage `db:"data" json:"data,omitempty"`
	IsRead    bool            `db:"is_read" json:"isRead"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}
