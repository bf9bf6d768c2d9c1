package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
)

// OrderHandler serves a customer's own order history.
type OrderHandler struct {
	orderRepo *repository.OrderRepository
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orderRepo *repository.OrderRepository) *OrderHandler {
	return &OrderHandler{orderRepo: orderRepo}
}

// ListOrders handles GET /v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderRepo.GetByUser(c.GetString("user_id"))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve orders")
		return
	}
	utils.Success(c, 200, "Orders retrieved", orders)
}

// GetOrder handles GET /v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid order ID")
		return
	}

	order, err := h.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve order")
		return
	}

	// customers can only read their own orders
	if order.UserID != c.GetString("user_id") {
		utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	utils.Success(c, 200, "Order retrieved", order)
}
