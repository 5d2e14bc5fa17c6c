package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/invoice-service/internal/config"
	"github.com/spec-kit/invoice-service/internal/events"
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
	n.dispatcher.Subscribe(events.EventVendorRegistered, n.handleVendorRegistered)
	n.dispatcher.Subscribe(events.EventInvoiceCreated, n.handleInvoiceCreated)
	n.dispatcher.Subscribe(events.EventInvoiceStatusChanged, n.handleInvoiceStatusChanged)
	n.dispatcher.Subscribe(events.EventPaymentRecorded, n.handlePaymentRecorded)
}

func (n *NotificationService) handleVendorRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("VendorRegistered", zap.String("vendor_id", event.VendorID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleInvoiceCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("InvoiceCreated", zap.String("vendor_id", event.VendorID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleInvoiceStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("InvoiceStatusChanged", zap.String("vendor_id", event.VendorID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePaymentRecorded(ctx context.Context, event events.Event) error {
	n.logger.Info("PaymentRecorded", zap.String("vendor_id", event.VendorID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("vendor_id", event.VendorID),
		zap.String("event_type", string(event.Type)))
}
