package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/events"
	"github.com/spec-kit/booking-service/internal/observability"
)

func TestActivityService_CountsWorkflowOutcomes(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	svc := NewActivityService(dispatcher, zap.NewNop(), metrics)
	svc.RegisterHandlers()

	ctx := context.Background()
	_ = dispatcher.Publish(ctx, events.Event{Type: events.EventBookingCompleted, RangeID: "r1"})
	_ = dispatcher.Publish(ctx, events.Event{Type: events.EventBookingCompleted, RangeID: "r2"})
	_ = dispatcher.Publish(ctx, events.Event{Type: events.EventBookingFailed, RangeID: "r3"})
	_ = dispatcher.Publish(ctx, events.Event{Type: events.EventNotificationFailed, RangeID: "r2"})

	assert.Equal(t, int64(2), metrics.WorkflowCount(string(events.EventBookingCompleted)))
	assert.Equal(t, int64(1), metrics.WorkflowCount(string(events.EventBookingFailed)))
	assert.Equal(t, int64(1), metrics.WorkflowCount(string(events.EventNotificationFailed)))
	assert.Zero(t, metrics.WorkflowCount("unknown"))
}
