package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/mailer"
	"github.com/spec-kit/booking-service/internal/repository"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// RangesHandler exposes the range store and mail transport boundaries.
type RangesHandler struct {
	ranges   repository.TimeRangeRepository
	notifier mailer.Notifier
}

// NewRangesHandler constructs handler.
func NewRangesHandler(ranges repository.TimeRangeRepository, notifier mailer.Notifier) *RangesHandler {
	return &RangesHandler{ranges: ranges, notifier: notifier}
}

// CreateRange POST /api/time-range.
func (h *RangesHandler) CreateRange(c *fiber.Ctx) error {
	var req dto.CreateTimeRangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	start, end, err := service.ValidateRange(req.Start, req.End)
	if err != nil {
		return err
	}
	tr, err := h.ranges.Create(c.UserContext(), start, end)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewTimeRangeResponse(tr)})
}

// ListStored GET /api/time-ranges/stored.
func (h *RangesHandler) ListStored(c *fiber.Ctx) error {
	ranges, err := h.ranges.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTimeRangeResponses(ranges)})
}

// DeactivateRange PUT /api/time-range/:id/inactive.
func (h *RangesHandler) DeactivateRange(c *fiber.Ctx) error {
	tr, err := h.ranges.Deactivate(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTimeRangeResponse(tr)})
}

// SendEmail POST /api/time-range/send-email.
func (h *RangesHandler) SendEmail(c *fiber.Ctx) error {
	var req dto.SendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	valid, err := service.ValidateSubmission(req.Start, req.End, req.RecipientEmail)
	if err != nil {
		return err
	}
	receipt, err := h.notifier.Send(c.UserContext(), valid.Start, valid.End, valid.Recipient)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SendEmailResponse{
		Message:   "Email sent successfully to " + valid.Recipient,
		MessageID: receipt.MessageID,
	}})
}
