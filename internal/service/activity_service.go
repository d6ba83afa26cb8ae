package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/events"
	"github.com/spec-kit/booking-service/internal/observability"
)

// ActivityService records booking lifecycle events for operators: structured
// log lines plus workflow outcome counters.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *ActivityService {
	return &ActivityService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventRangeCreated, a.handleRangeCreated)
	a.dispatcher.Subscribe(events.EventNotificationSent, a.handleNotificationSent)
	a.dispatcher.Subscribe(events.EventNotificationFailed, a.handleNotificationFailed)
	a.dispatcher.Subscribe(events.EventBookingCompleted, a.handleBookingCompleted)
	a.dispatcher.Subscribe(events.EventBookingFailed, a.handleBookingFailed)
}

func (a *ActivityService) handleRangeCreated(ctx context.Context, event events.Event) error {
	a.logger.Info("RangeCreated", zap.String("range_id", event.RangeID), zap.Any("payload", event.Payload))
	return nil
}

func (a *ActivityService) handleNotificationSent(ctx context.Context, event events.Event) error {
	a.logger.Info("NotificationSent", zap.String("range_id", event.RangeID), zap.Any("payload", event.Payload))
	return nil
}

func (a *ActivityService) handleNotificationFailed(ctx context.Context, event events.Event) error {
	a.logger.Warn("NotificationFailed", zap.String("range_id", event.RangeID), zap.Any("payload", event.Payload))
	a.metrics.RecordWorkflow(string(events.EventNotificationFailed))
	return nil
}

func (a *ActivityService) handleBookingCompleted(ctx context.Context, event events.Event) error {
	a.logger.Info("BookingCompleted", zap.String("range_id", event.RangeID), zap.Any("payload", event.Payload))
	a.metrics.RecordWorkflow(string(events.EventBookingCompleted))
	return nil
}

func (a *ActivityService) handleBookingFailed(ctx context.Context, event events.Event) error {
	a.logger.Warn("BookingFailed", zap.String("range_id", event.RangeID), zap.Any("payload", event.Payload))
	a.metrics.RecordWorkflow(string(events.EventBookingFailed))
	return nil
}
