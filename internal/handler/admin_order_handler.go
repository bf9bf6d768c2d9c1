package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/service"
	"github.com/brightstore/store_api/internal/utils"
)

// AdminOrderHandler covers the admin orders panel: paging through orders
// and walking them along the fulfilment pipeline.
type AdminOrderHandler struct {
	orderSvc *service.OrderService
}

// NewAdminOrderHandler constructs an AdminOrderHandler.
func NewAdminOrderHandler(orderSvc *service.OrderService) *AdminOrderHandler {
	return &AdminOrderHandler{orderSvc: orderSvc}
}

// ListOrders handles GET /v1/admin/orders
func (h *AdminOrderHandler) ListOrders(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, total, err := h.orderSvc.List(status, page, limit)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidStatus) {
			utils.Error(c, 400, "INVALID_STATUS", "Unknown order status")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve orders")
		return
	}
	utils.SuccessWithPagination(c, 200, "Orders retrieved", orders, page, limit, total)
}

// GetOrder handles GET /v1/admin/orders/:id
func (h *AdminOrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid order ID")
		return
	}

	order, err := h.orderSvc.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve order")
		return
	}
	utils.Success(c, 200, "Order retrieved", order)
}

// UpdateOrderStatus handles PATCH /v1/admin/orders/:id/status
func (h *AdminOrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid order ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "status is required")
		return
	}

	order, err := h.orderSvc.UpdateStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidStatus):
			utils.Error(c, 400, "INVALID_STATUS", "Unknown order status")
		case errors.Is(err, sql.ErrNoRows):
			utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update order status")
		}
		return
	}
	utils.Success(c, 200, "Order status updated", order)
}
