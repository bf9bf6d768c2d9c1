package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
)

// NotificationHandler serves a customer's notification feed.
type NotificationHandler struct {
	notificationRepo *repository.NotificationRepository
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(notificationRepo *repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo}
}

// ListNotifications handles GET /v1/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.notificationRepo.GetByUser(c.GetString("user_id"))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve notifications")
		return
	}
	utils.Success(c, 200, "Notifications retrieved", notifications)
}

// MarkNotificationRead handles PATCH /v1/notifications/:id/read
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := h.notificationRepo.MarkRead(id, c.GetString("user_id")); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update notification")
		return
	}
	utils.Success(c, 200, "Notification marked as read", nil)
}
