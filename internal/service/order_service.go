package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
)

// OrderService handles admin order management. Orders are created by checkout
// only; here their status moves through the lifecycle, firing a best-effort
// push notification to the customer on each change.
type OrderService struct {
	orderRepo       *repository.OrderRepository
	notificationSvc *NotificationService
}

// NewOrderService constructs an OrderService.
func NewOrderService(orderRepo *repository.OrderRepository, notificationSvc *NotificationService) *OrderService {
	return &OrderService{orderRepo: orderRepo, notificationSvc: notificationSvc}
}

// List returns orders filtered by status, paginated.
func (s *OrderService) List(status string, page, limit int) ([]models.Order, int, error) {
	if status != "" && !models.ValidOrderStatus(models.OrderStatus(status)) {
		return nil, 0, utils.ErrInvalidStatus
	}
	return s.orderRepo.GetAllPaged(status, page, limit)
}

// Get returns one order.
func (s *OrderService) Get(id int) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateStatus moves an order to a new lifecycle status and notifies the
// customer. Notification failure never fails the update.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, utils.ErrInvalidStatus
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Order Update: %s", strings.ToUpper(string(status)))
	body := fmt.Sprintf("Your order #%d is now %s.", order.ID, status)
	data, _ := json.Marshal(map[string]int{"orderId": order.ID})
	if err := s.notificationSvc.Send(ctx, order.UserID, title, body, data); err != nil {
		log.Warn().Err(err).Int("order_id", order.ID).Msg("Order status notification not delivered")
	}

	return order, nil
}
