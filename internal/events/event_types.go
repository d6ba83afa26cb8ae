package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRangeCreated       EventType = "range_created"
	EventNotificationSent   EventType = "notification_sent"
	EventNotificationFailed EventType = "notification_failed"
	EventBookingCompleted   EventType = "booking_completed"
	EventBookingFailed      EventType = "booking_failed"
)

// Event represents a booking lifecycle event emitted by the submission workflow.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RangeID   string      `json:"range_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RangeCreatedPayload payload.
type RangeCreatedPayload struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NotificationSentPayload payload.
type NotificationSentPayload struct {
	Recipient string `json:"recipient"`
	MessageID string `json:"message_id"`
}

// NotificationFailedPayload payload.
type NotificationFailedPayload struct {
	Recipient string `json:"recipient"`
	Reason    string `json:"reason"`
}

// BookingCompletedPayload payload.
type BookingCompletedPayload struct {
	Notified bool `json:"notified"`
}

// BookingFailedPayload payload.
type BookingFailedPayload struct {
	Step   string `json:"step"`
	Reason string `json:"reason"`
}
