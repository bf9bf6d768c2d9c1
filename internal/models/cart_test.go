package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProduct(id int, price float64) *Product {
	return &Product{ID: id, Name: "Toor Dal", Price: price, ImageURL: "https://img.test/p.jpg"}
}

func TestCartAddItemMergesLines(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct(1, 120), 2)
	cart.AddItem(testProduct(1, 120), 3)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5.0, cart.Items[0].Quantity)
	assert.Equal(t, 600.0, cart.Subtotal())
}

func TestCartAddItemIgnoresNonPositiveQuantity(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct(1, 120), 0)
	cart.AddItem(testProduct(1, 120), -2)

	assert.True(t, cart.IsEmpty())
}

func TestCartAddItemKeepsSeparateLines(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct(1, 120), 1)
	cart.AddItem(testProduct(2, 80), 0.5)

	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 160.0, cart.Subtotal())
}

func TestCartSetQuantityRejectsBelowOne(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct(1, 120), 2)

	assert.False(t, cart.SetQuantity(1, 0))
	assert.False(t, cart.SetQuantity(1, 0.5))
	assert.Equal(t, 2.0, cart.Items[0].Quantity)

	assert.True(t, cart.SetQuantity(1, 4))
	assert.Equal(t, 4.0, cart.Items[0].Quantity)
}

func TestCartSetQuantityUnknownProduct(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct(1, 120), 2)

	assert.False(t, cart.SetQuantity(99, 3))
}

func TestCartRemoveItem(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct(1, 120), 2)
	cart.AddItem(testProduct(2, 80), 1)

	cart.RemoveItem(1)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].ProductID)
}

func TestCartTotalsIdentity(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct(1, 120), 2)
	cart.Coupon = &AppliedCoupon{Code: "SAVE50", Discount: 50}

	assert.Equal(t, 240.0, cart.Subtotal())
	assert.Equal(t, 50.0, cart.Discount())
	assert.Equal(t, 190.0, cart.Total())
}

func TestCartTotalNeverNegative(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct(1, 10), 1)
	cart.Coupon = &AppliedCoupon{Code: "BIG", Discount: 500}

	assert.Equal(t, 0.0, cart.Total())
}

func TestCartClear(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct(1, 120), 2)
	cart.Coupon = &AppliedCoupon{Code: "SAVE50", Discount: 50}

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Nil(t, cart.Coupon)
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartCloneIsIndependent(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(testProduct(1, 120), 2)
	cart.Coupon = &AppliedCoupon{Code: "SAVE50", Discount: 50}

	clone := cart.Clone()

	cart.SetQuantity(1, 9)
	cart.Coupon.Discount = 999
	cart.AddItem(testProduct(2, 80), 1)

	assert.Len(t, clone.Items, 1)
	assert.Equal(t, 2.0, clone.Items[0].Quantity)
	assert.Equal(t, 50.0, clone.Coupon.Discount)
	assert.Equal(t, 190.0, clone.Total())
}

func TestCartCloneEmpty(t *testing.T) {
	cart := &Cart{}
	clone := cart.Clone()

	assert.True(t, clone.IsEmpty())
	assert.Nil(t, clone.Coupon)
}
