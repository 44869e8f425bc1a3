package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/craftside/marketplace/internal/config"
	"github.com/craftside/marketplace/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventOrderPlaced, n.handleOrderPlaced)
	n.dispatcher.Subscribe(events.EventReviewSubmitted, n.handleReviewSubmitted)
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.Int64("user_id", event.UserID))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleOrderPlaced(ctx context.Context, event events.Event) error {
	n.logger.Info("OrderPlaced", zap.Int64("user_id", event.UserID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleReviewSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ReviewSubmitted", zap.Int64("user_id", event.UserID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.Int64("user_id", event.UserID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("user_id", event.UserID),
		zap.String("event_type", string(event.Type)))
}
