package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lawfirm/site-api/internal/config"
	"github.com/lawfirm/site-api/internal/events"
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
	n.dispatcher.Subscribe(events.EventContactSubmitted, n.handleContactSubmitted)
	n.dispatcher.Subscribe(events.EventContactStatusChanged, n.handleAudit)
	n.dispatcher.Subscribe(events.EventContactDeleted, n.handleAudit)
	n.dispatcher.Subscribe(events.EventFAQChanged, n.handleAudit)
}

func (n *NotificationService) handleContactSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ContactSubmitted", zap.String("contact_id", event.ResourceID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAudit(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("resource_id", event.ResourceID),
		zap.String("actor", event.Actor),
		zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailTo) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", n.cfg.EmailTo),
		zap.String("resource_id", event.ResourceID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("resource_id", event.ResourceID),
		zap.String("event_type", string(event.Type)))
}
