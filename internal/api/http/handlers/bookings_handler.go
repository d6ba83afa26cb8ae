package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// BookingsHandler exposes the single-submission booking workflow.
type BookingsHandler struct {
	service *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{service: bookingService}
}

// Submit POST /api/bookings. Every terminal state renders a status, a
// severity and one human-readable message; internal error detail stays in
// the logs.
func (h *BookingsHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SubmissionResponse{
			Status:   domain.SubmissionStatusFailed,
			Severity: domain.SeverityError,
			Message:  "invalid payload",
		})
	}

	result, err := h.service.Submit(c.UserContext(), service.SubmissionInput{
		Start:     req.Start,
		End:       req.End,
		Recipient: req.RecipientEmail,
	})
	if err != nil {
		return h.renderFailure(c, err)
	}

	resp := dto.SubmissionResponse{
		Status:   result.Status,
		Severity: result.Severity,
		Message:  result.Message,
		Warning:  result.Warning,
	}
	if result.Range != nil {
		tr := dto.NewTimeRangeResponse(result.Range)
		resp.TimeRange = &tr
	}
	resp.BookedRanges = dto.NewTimeRangeResponses(result.BookedRanges)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *BookingsHandler) renderFailure(c *fiber.Ctx, err error) error {
	de := apperrors.ToDomainError(err)
	resp := dto.SubmissionResponse{
		Status:   domain.SubmissionStatusFailed,
		Severity: domain.SeverityError,
		Message:  de.Message,
	}
	var wfErr *service.WorkflowError
	if errors.As(err, &wfErr) {
		resp.Message = string(wfErr.Step) + " failed: " + de.Message
		// A finalize failure leaves a persisted record active; its id is
		// surfaced for manual follow-up.
		resp.RangeID = wfErr.RangeID
	}
	return c.Status(de.HTTPStatus).JSON(resp)
}
