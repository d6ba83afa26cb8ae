package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spec-kit/booking-service/internal/domain"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnavailable(code, message string) error {
	return NewDomainError(code, message, http.StatusServiceUnavailable, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// validationSentinels map onto 400 with the rule's canonical message.
var validationSentinels = []error{
	domain.ErrMissingField,
	domain.ErrMalformedStart,
	domain.ErrMalformedEnd,
	domain.ErrRangeInverted,
	domain.ErrMalformedRecipient,
}

// ToDomainError converts generic errors to DomainError, mapping the booking
// error taxonomy onto HTTP classes. Wrapped detail stays in Err; only the
// sentinel's canonical message reaches the response body.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			return &DomainError{
				Code:       "VALIDATION_FAILED",
				Message:    sentinel.Error(),
				HTTPStatus: http.StatusBadRequest,
				Err:        err,
			}
		}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidIdentifier):
		return &DomainError{
			Code:       "INVALID_IDENTIFIER",
			Message:    domain.ErrInvalidIdentifier.Error(),
			HTTPStatus: http.StatusBadRequest,
			Err:        err,
		}
	case errors.Is(err, domain.ErrRangeNotFound):
		return &DomainError{
			Code:       "NOT_FOUND",
			Message:    domain.ErrRangeNotFound.Error(),
			HTTPStatus: http.StatusNotFound,
			Err:        err,
		}
	case errors.Is(err, domain.ErrMailNotConfigured):
		return &DomainError{
			Code:       "MAIL_NOT_CONFIGURED",
			Message:    domain.ErrMailNotConfigured.Error(),
			HTTPStatus: http.StatusServiceUnavailable,
			Err:        err,
		}
	case errors.Is(err, domain.ErrStoreUnavailable):
		return &DomainError{
			Code:       "STORE_UNAVAILABLE",
			Message:    domain.ErrStoreUnavailable.Error(),
			HTTPStatus: http.StatusServiceUnavailable,
			Err:        err,
		}
	case errors.Is(err, domain.ErrMailDelivery):
		return &DomainError{
			Code:       "MAIL_DELIVERY_FAILED",
			Message:    domain.ErrMailDelivery.Error(),
			HTTPStatus: http.StatusInternalServerError,
			Err:        err,
		}
	case errors.Is(err, domain.ErrPersistence):
		return &DomainError{
			Code:       "PERSISTENCE_FAILED",
			Message:    domain.ErrPersistence.Error(),
			HTTPStatus: http.StatusInternalServerError,
			Err:        err,
		}
	}

	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
