package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/brightstore/store_api/internal/models"
	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/utils"
	"github.com/brightstore/store_api/pkg/expopush"
)

// NotificationService looks up a customer's push token, forwards the message
// to the push-delivery endpoint, and logs the notification row regardless of
// delivery outcome.
type NotificationService struct {
	profileRepo      *repository.ProfileRepository
	notificationRepo *repository.NotificationRepository
	pushClient       *expopush.Client
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(
	profileRepo *repository.ProfileRepository,
	notificationRepo *repository.NotificationRepository,
	pushClient *expopush.Client,
) *NotificationService {
	return &NotificationService{
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		pushClient:       pushClient,
	}
}

// Send delivers one notification to a customer. A customer without a stored
// push token yields ErrNoPushToken and nothing is sent or logged.
func (s *NotificationService) Send(ctx context.Context, userID, title, body string, data json.RawMessage) error {
	token, err := s.profileRepo.GetPushToken(userID)
	if err != nil {
		return err
	}
	if token == "" {
		return utils.ErrNoPushToken
	}

	msg := &expopush.Message{
		To:    token,
		Sound: "default",
		Title: title,
		Body:  body,
		Data:  data,
	}
	if _, err := s.pushClient.Send(ctx, msg); err != nil {
		// Logged only: the notification row below is written either way.
		log.Error().Err(err).Str("user_id", userID).Msg("Push delivery failed")
	}

	row := &models.Notification{
		UserID: userID,
		Title:  title,
		Body:   body,
		Data:   data,
	}
	if err := s.notificationRepo.Create(row); err != nil {
		return err
	}
	return nil
}
