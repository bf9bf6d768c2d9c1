package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/service"
	"github.com/brightstore/store_api/internal/utils"
)

// CheckoutHandler submits the session cart. Auth is soft: a valid bearer
// token attaches the order to the customer, an absent or invalid one still
// produces the WhatsApp handoff for a guest.
type CheckoutHandler struct {
	checkoutSvc *service.CheckoutService
}

// NewCheckoutHandler constructs a CheckoutHandler.
func NewCheckoutHandler(checkoutSvc *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc}
}

// Checkout handles POST /v1/checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		utils.Error(c, 400, "SESSION_REQUIRED", "X-Session-Id header is required")
		return
	}

	var req struct {
		DeliveryRequested bool   `json:"deliveryRequested"`
		AddressID         *int   `json:"addressId"`
		Email             string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	result, err := h.checkoutSvc.Checkout(c.Request.Context(), sessionID, &service.CheckoutRequest{
		UserID:            optionalUserID(c),
		DeliveryRequested: req.DeliveryRequested,
		AddressID:         req.AddressID,
		ContactEmail:      req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmptyCart):
			utils.Error(c, 400, "EMPTY_CART", "Cart is empty")
		case errors.Is(err, utils.ErrAddressRequired):
			utils.Error(c, 400, "ADDRESS_REQUIRED", "A delivery address must be selected")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Checkout failed")
		}
		return
	}

	utils.Success(c, 200, "Checkout ready", result)
}

// optionalUserID extracts the customer ID from the Authorization header when a
// valid token is present. Guests pass through with an empty ID.
func optionalUserID(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	userID, err := utils.ValidateUserToken(strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		return ""
	}
	return userID
}
