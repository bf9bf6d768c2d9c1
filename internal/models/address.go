package models

import "time"

// Address is a saved delivery address. At most one address per user has
// IsDefault set; the repository unsets the others when a new default is saved.
type Address struct {
	ID           int       `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"-"`
	Label        string    `db:"label" json:"label"`
	FullName     string    `db:"full_name" json:"fullName"`
	Phone        string    `db:"phone" json:"phone"`
	AddressLine1 string    `db:"address_line1" json:"addressLine1"`
	AddressLine2 *string   `db:"address_line2" json:"addressLine2,omitempty"`
	City         string    `db:"city" json:"city"`
	State        string    `db:"state" json:"state"`
	Pincode      string    `db:"pincode" json:"pincode"`
	Landmark     *string   `db:"landmark" json:"landmark,omitempty"`
	IsDefault    bool      `db:"is_default" json:"isDefault"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
