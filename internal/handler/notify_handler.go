package handler

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/brightstore/store_api/internal/service"
	"github.com/brightstore/store_api/internal/utils"
)

// NotifyHandler lets console operators push an ad-hoc notification to a
// customer's device.
type NotifyHandler struct {
	notificationSvc *service.NotificationService
}

// NewNotifyHandler constructs a NotifyHandler.
func NewNotifyHandler(notificationSvc *service.NotificationService) *NotifyHandler {
	return &NotifyHandler{notificationSvc: notificationSvc}
}

// Notify handles POST /v1/admin/notify
func (h *NotifyHandler) Notify(c *gin.Context) {
	var req struct {
		UserID string          `json:"userId" binding:"required"`
		Title  string          `json:"title" binding:"required"`
		Body   string          `json:"body" binding:"required"`
		Data   json.RawMessage `json:"data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "userId, title and body are required")
		return
	}

	err := h.notificationSvc.Send(c.Request.Context(), req.UserID, req.Title, req.Body, req.Data)
	if err != nil {
		if errors.Is(err, utils.ErrNoPushToken) {
			// not an error from the operator's view: the customer simply
			// has no registered device
			utils.Success(c, 200, "Customer has no registered device", nil)
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to send notification")
		return
	}
	utils.Success(c, 200, "Notification sent", nil)
}
