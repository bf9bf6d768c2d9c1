package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderPending, OrderProcessing, OrderPacked, OrderShipped,
		OrderOutForDelivery, OrderCompleted, OrderCancelled,
	} {
		assert.True(t, ValidOrderStatus(s), string(s))
	}

	assert.False(t, ValidOrderStatus("delivered"))
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("PENDING"))
}
