package dto

import (
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
)

// CreateTimeRangeRequest payload.
type CreateTimeRangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SendEmailRequest payload.
type SendEmailRequest struct {
	Start          string `json:"start"`
	End            string `json:"end"`
	RecipientEmail string `json:"recipientEmail"`
}

// SubmitBookingRequest payload for the single-submission workflow.
type SubmitBookingRequest struct {
	Start          string `json:"start"`
	End            string `json:"end"`
	RecipientEmail string `json:"recipientEmail"`
}

// TimeRangeResponse mirrors one stored range.
type TimeRangeResponse struct {
	ID        string    `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTimeRangeResponse maps a domain record.
func NewTimeRangeResponse(tr *domain.TimeRange) TimeRangeResponse {
	return TimeRangeResponse{
		ID:        tr.ID,
		Start:     tr.Start,
		End:       tr.End,
		IsActive:  tr.IsActive,
		CreatedAt: tr.CreatedAt,
	}
}

// NewTimeRangeResponses maps a listing.
func NewTimeRangeResponses(ranges []domain.TimeRange) []TimeRangeResponse {
	items := make([]TimeRangeResponse, 0, len(ranges))
	for i := range ranges {
		items = append(items, NewTimeRangeResponse(&ranges[i]))
	}
	return items
}

// SendEmailResponse reports a delivered confirmation.
type SendEmailResponse struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

// SubmissionResponse is the terminal status of one submission workflow.
type SubmissionResponse struct {
	Status       domain.SubmissionStatus `json:"status"`
	Severity     domain.Severity         `json:"severity"`
	Message      string                  `json:"message"`
	Warning      string                  `json:"warning,omitempty"`
	TimeRange    *TimeRangeResponse      `json:"time_range,omitempty"`
	BookedRanges []TimeRangeResponse     `json:"booked_ranges,omitempty"`
	RangeID      string                  `json:"range_id,omitempty"`
}
