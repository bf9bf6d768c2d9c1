package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken    = errors.New("INVALID_TOKEN")
	ErrProductNotFound = errors.New("PRODUCT_NOT_FOUND")
	ErrCouponExists    = errors.New("COUPON_EXISTS")
	ErrEmptyCart       = errors.New("EMPTY_CART")
	ErrAddressRequired = errors.New("ADDRESS_REQUIRED")
	ErrInvalidQuantity = errors.New("INVALID_QUANTITY")
	ErrInvalidStatus   = errors.New("INVALID_STATUS")
	ErrNoPushToken     = errors.New("NO_PUSH_TOKEN")
)
