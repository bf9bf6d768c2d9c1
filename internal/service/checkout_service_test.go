package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/utils"
)

func TestValidateSubmissionEmptyCart(t *testing.T) {
	cart := &models.Cart{}

	err := validateSubmission(cart, false, nil)
	assert.ErrorIs(t, err, utils.ErrEmptyCart)

	// the empty-cart block wins even when delivery details are missing too
	err = validateSubmission(cart, true, nil)
	assert.ErrorIs(t, err, utils.ErrEmptyCart)
}

func TestValidateSubmissionDeliveryNeedsAddress(t *testing.T) {
	cart := &models.Cart{Items: []models.CartItem{{ProductID: 1, Name: "Turmeric", Price: 80, Quantity: 1}}}

	err := validateSubmission(cart, true, nil)
	assert.ErrorIs(t, err, utils.ErrAddressRequired)

	addressID := 7
	assert.NoError(t, validateSubmission(cart, true, &addressID))
}

func TestValidateSubmissionPickup(t *testing.T) {
	cart := &models.Cart{Items: []models.CartItem{{ProductID: 1, Name: "Turmeric", Price: 80, Quantity: 1}}}

	// pickup orders never require a selected address
	assert.NoError(t, validateSubmission(cart, false, nil))
}

func TestIsOutstation(t *testing.T) {
	local := []string{"600001", "600002", "600003", "600004", "600005"}

	assert.False(t, IsOutstation("600001", local))
	assert.False(t, IsOutstation("600005", local))
	assert.True(t, IsOutstation("600099", local))
	assert.True(t, IsOutstation("110001", local))
}

func TestIsOutstationEmptyPincode(t *testing.T) {
	local := []string{"600001"}

	// no pincode on record means we can't flag the order
	assert.False(t, IsOutstation("", local))
}

func TestIsOutstationTrimsInput(t *testing.T) {
	local := []string{"600001"}

	assert.False(t, IsOutstation(" 600001 ", local))
}
