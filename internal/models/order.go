package models

import (
	"encoding/json"
	"time"
)

// OrderStatus enumerates the order lifecycle. Orders are created as pending
// at checkout and mutated only by admin action, never deleted.
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderProcessing     OrderStatus = "processing"
	OrderPacked         OrderStatus = "packed"
	OrderShipped        OrderStatus = "shipped"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderCompleted      OrderStatus = "completed"
	OrderCancelled      OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known lifecycle status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderPacked, OrderShipped,
		OrderOutForDelivery, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order is an immutable-after-creation record of a checkout submission.
// Items and the shipping address are denormalized snapshots of the cart and
// the selected address at purchase time.
type Order struct {
	ID              int             `db:"id" json:"id"`
	UserID          string          `db:"user_id" json:"userId"`
	Items           json.RawMessage `db:"items" json:"items"`
	TotalAmount     float64         `db:"total_amount" json:"totalAmount"`
	ShippingAddress json.RawMessage `db:"shipping_address" json:"shippingAddress"`
	Status          OrderStatus     `db:"status" json:"status"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time       `db:"updated_at" json:"-"`
}

// ShippingSnapshot is the address block embedded in an order.
type ShippingSnapshot struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	Pincode      string `json:"pincode"`
	Landmark     string `json:"landmark,omitempty"`
}
