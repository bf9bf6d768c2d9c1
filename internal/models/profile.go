package models

import "time"

// Profile is a customer record. The id is the subject issued by the external
// identity provider; this service never creates identities itself.
type Profile struct {
	ID           string    `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"fullName"`
	Phone        string    `db:"phone" json:"phone"`
	Email        *string   `db:"email" json:"email,omitempty"`
	AddressLine1 string    `db:"address_line1" json:"addressLine1"`
	AddressLine2 string    `db:"address_line2" json:"addressLine2"`
	City         string    `db:"city" json:"city"`
	Pincode      string    `db:"pincode" json:"pincode"`
	Landmark     *string   `db:"landmark" json:"landmark,omitempty"`
	PushToken    *string   `db:"push_token" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
