package domain

import "errors"

// Validation failures, in the order the rules are checked.
var (
	ErrMissingField       = errors.New("start, end and recipient email are required")
	ErrMalformedStart     = errors.New("invalid start date format")
	ErrMalformedEnd       = errors.New("invalid end date format")
	ErrRangeInverted      = errors.New("start date must be before end date")
	ErrMalformedRecipient = errors.New("invalid recipient email format")
)

// Store failures.
var (
	ErrStoreUnavailable  = errors.New("booking store is unavailable")
	ErrPersistence       = errors.New("booking store rejected the write")
	ErrRangeNotFound     = errors.New("time range not found")
	ErrInvalidIdentifier = errors.New("invalid time range identifier")
)

// Notification failures. An unconfigured transport is an expected condition,
// distinguishable from a delivery attempt that failed.
var (
	ErrMailNotConfigured = errors.New("email service is not configured")
	ErrMailDelivery      = errors.New("failed to send email")
)
