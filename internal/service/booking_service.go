package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/events"
	"github.com/spec-kit/booking-service/internal/mailer"
	"github.com/spec-kit/booking-service/internal/repository"
)

// Step identifies the workflow stage a failure occurred in.
type Step string

const (
	StepValidate Step = "validate"
	StepPersist  Step = "persist"
	StepNotify   Step = "notify"
	StepFinalize Step = "finalize"
	StepRefresh  Step = "refresh"
)

// WorkflowError attributes a submission failure to its workflow step.
// RangeID is set when a persisted record was left active by a finalize
// failure; such records need manual follow-up, the workflow does not retry
// or roll back.
type WorkflowError struct {
	Step    Step
	RangeID string
	Err     error
}

func (e *WorkflowError) Error() string {
	if e.RangeID != "" {
		return fmt.Sprintf("%s: %v (range %s left active)", e.Step, e.Err, e.RangeID)
	}
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

// SubmissionInput carries the raw form values for one submission.
type SubmissionInput struct {
	Start     string
	End       string
	Recipient string
}

// SubmissionResult is the outcome surfaced to the presentation layer.
type SubmissionResult struct {
	Status       domain.SubmissionStatus
	Severity     domain.Severity
	Message      string
	Warning      string
	Range        *domain.TimeRange
	BookedRanges []domain.TimeRange
}

// PendingResult is the in-flight representation of a submission, rendered
// while the workflow runs. Submit overwrites it in place with the terminal
// outcome.
func PendingResult() *SubmissionResult {
	return &SubmissionResult{
		Status:   domain.SubmissionStatusPending,
		Severity: domain.SeverityInfo,
		Message:  "Processing your request...",
	}
}

// BookingService drives the submission workflow: validate, persist, notify,
// finalize, refresh. Each run is an independent sequential pass; no step is
// retried.
type BookingService struct {
	ranges     repository.TimeRangeRepository
	notifier   mailer.Notifier
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewBookingService constructs the service.
func NewBookingService(ranges repository.TimeRangeRepository, notifier mailer.Notifier, dispatcher events.Dispatcher, logger *zap.Logger) *BookingService {
	return &BookingService{
		ranges:     ranges,
		notifier:   notifier,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Submit runs one full workflow pass. Validation and store failures during
// persist or finalize halt the run with a WorkflowError naming the step.
// Notification failure never halts the run: the booking is closed out anyway
// and the result carries a degraded-notification warning. A refresh failure
// after completion only leaves BookedRanges empty.
func (s *BookingService) Submit(ctx context.Context, input SubmissionInput) (*SubmissionResult, error) {
	valid, err := ValidateSubmission(input.Start, input.End, input.Recipient)
	if err != nil {
		return nil, s.fail(ctx, StepValidate, "", err)
	}

	created, err := s.ranges.Create(ctx, valid.Start, valid.End)
	if err != nil {
		return nil, s.fail(ctx, StepPersist, "", err)
	}
	s.publish(ctx, events.Event{
		Type:    events.EventRangeCreated,
		RangeID: created.ID,
		Payload: events.RangeCreatedPayload{Start: created.Start, End: created.End},
	})
	s.logger.Info("time range persisted",
		zap.String("range_id", created.ID),
		zap.Time("start", created.Start),
		zap.Time("end", created.End))

	// Email delivery is best-effort relative to the booking's durability:
	// any send failure degrades to a warning and the workflow proceeds.
	var warning string
	receipt, err := s.notifier.Send(ctx, created.Start, created.End, valid.Recipient)
	if err != nil {
		warning = fmt.Sprintf("confirmation email not sent: %v", err)
		s.logger.Warn("confirmation email failed",
			zap.String("range_id", created.ID),
			zap.Error(err))
		s.publish(ctx, events.Event{
			Type:    events.EventNotificationFailed,
			RangeID: created.ID,
			Payload: events.NotificationFailedPayload{Recipient: valid.Recipient, Reason: err.Error()},
		})
	} else {
		s.publish(ctx, events.Event{
			Type:    events.EventNotificationSent,
			RangeID: created.ID,
			Payload: events.NotificationSentPayload{Recipient: valid.Recipient, MessageID: receipt.MessageID},
		})
	}

	closed, err := s.ranges.Deactivate(ctx, created.ID)
	if err != nil {
		// The record exists and is still active; surfaced, not repaired.
		return nil, s.fail(ctx, StepFinalize, created.ID, err)
	}
	s.publish(ctx, events.Event{
		Type:    events.EventBookingCompleted,
		RangeID: closed.ID,
		Payload: events.BookingCompletedPayload{Notified: warning == ""},
	})

	result := PendingResult()
	result.Status = domain.SubmissionStatusSuccess
	result.Severity = domain.SeveritySuccess
	result.Warning = warning
	result.Range = closed
	if warning == "" {
		result.Message = "Time range booked and confirmation email sent."
	} else {
		result.Message = "Time range booked; confirmation email could not be sent."
	}

	ranges, err := s.ranges.ListAll(ctx)
	if err != nil {
		// Display-only concern: the booking stays completed.
		s.logger.Warn("failed to refresh stored ranges after booking",
			zap.String("range_id", closed.ID),
			zap.Error(err))
	} else {
		result.BookedRanges = filterBooked(ranges)
	}

	return result, nil
}

// ListBooked returns the inactive (booked) slots, newest first.
func (s *BookingService) ListBooked(ctx context.Context) ([]domain.TimeRange, error) {
	ranges, err := s.ranges.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return filterBooked(ranges), nil
}

func (s *BookingService) fail(ctx context.Context, step Step, rangeID string, err error) error {
	wfErr := &WorkflowError{Step: step, RangeID: rangeID, Err: err}
	s.logger.Error("submission workflow failed",
		zap.String("step", string(step)),
		zap.String("range_id", rangeID),
		zap.Error(err))
	s.publish(ctx, events.Event{
		Type:    events.EventBookingFailed,
		RangeID: rangeID,
		Payload: events.BookingFailedPayload{Step: string(step), Reason: err.Error()},
	})
	return wfErr
}

func (s *BookingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	_ = s.dispatcher.Publish(ctx, event)
}

func filterBooked(ranges []domain.TimeRange) []domain.TimeRange {
	booked := make([]domain.TimeRange, 0, len(ranges))
	for _, tr := range ranges {
		if !tr.IsActive {
			booked = append(booked, tr)
		}
	}
	return booked
}
