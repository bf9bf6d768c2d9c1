package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/service"
	"github.com/brightstore/store_api/internal/utils"
)

const sessionHeader = "X-Session-Id"

// CartHandler manages the session cart. The session is identified by the
// X-Session-Id header; when a request arrives without one a new session ID
// is generated and echoed back in the response header.
type CartHandler struct {
	cartSvc *service.CartService
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(cartSvc *service.CartService) *CartHandler {
	return &CartHandler{cartSvc: cartSvc}
}

// cartView is the wire representation of a cart with computed totals.
type cartView struct {
	Items    []models.CartItem     `json:"items"`
	Coupon   *models.AppliedCoupon `json:"coupon,omitempty"`
	Subtotal float64               `json:"subtotal"`
	Discount float64               `json:"discount"`
	Total    float64               `json:"total"`
}

func newCartView(cart *models.Cart) cartView {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return cartView{
		Items:    items,
		Coupon:   cart.Coupon,
		Subtotal: cart.Subtotal(),
		Discount: cart.Discount(),
		Total:    cart.Total(),
	}
}

// sessionID resolves the cart session for the request, minting a new one
// when the client did not send a header.
func (h *CartHandler) sessionID(c *gin.Context) (string, bool) {
	if id := c.GetHeader(sessionHeader); id != "" {
		c.Header(sessionHeader, id)
		return id, true
	}
	id, err := utils.GenerateSessionID()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create cart session")
		return "", false
	}
	c.Header(sessionHeader, id)
	return id, true
}

// GetCart handles GET /v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	cart, err := h.cartSvc.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to load cart")
		return
	}
	utils.Success(c, 200, "Cart retrieved", newCartView(cart))
}

// AddItem handles POST /v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req struct {
		ProductID int     `json:"productId" binding:"required"`
		Quantity  float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "productId is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartSvc.AddItem(c.Request.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidQuantity):
			utils.Error(c, 400, "INVALID_QUANTITY", "Quantity must be greater than zero")
		case errors.Is(err, utils.ErrProductNotFound):
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to add item to cart")
		}
		return
	}
	utils.Success(c, 200, "Item added to cart", newCartView(cart))
}

// UpdateItem handles PUT /v1/cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	var req struct {
		Quantity float64 `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "quantity is required")
		return
	}

	cart, err := h.cartSvc.SetQuantity(c.Request.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidQuantity):
			utils.Error(c, 400, "INVALID_QUANTITY", "Quantity must be at least 1")
		case errors.Is(err, utils.ErrProductNotFound):
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Item not in cart")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update cart item")
		}
		return
	}
	utils.Success(c, 200, "Cart item updated", newCartView(cart))
}

// RemoveItem handles DELETE /v1/cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid product ID")
		return
	}

	cart, err := h.cartSvc.RemoveItem(c.Request.Context(), sessionID, productID)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to remove cart item")
		return
	}
	utils.Success(c, 200, "Item removed from cart", newCartView(cart))
}

// ClearCart handles DELETE /v1/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.cartSvc.Clear(c.Request.Context(), sessionID); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to clear cart")
		return
	}
	utils.Success(c, 200, "Cart cleared", newCartView(&models.Cart{}))
}

// ApplyCoupon handles POST /v1/cart/coupon
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "code is required")
		return
	}

	cart, result, err := h.cartSvc.ApplyCoupon(c.Request.Context(), sessionID, req.Code)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to apply coupon")
		return
	}
	if !result.Valid {
		utils.Error(c, 400, "COUPON_INVALID", result.Message)
		return
	}
	utils.Success(c, 200, result.Message, newCartView(cart))
}

// RemoveCoupon handles DELETE /v1/cart/coupon
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	cart, err := h.cartSvc.RemoveCoupon(c.Request.Context(), sessionID)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to remove coupon")
		return
	}
	utils.Success(c, 200, "Coupon removed", newCartView(cart))
}
