package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
)

// Timestamps arrive either as RFC 3339 strings or as zone-less
// datetime-local values truncated to minute precision; the latter are
// interpreted in server local time.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

var recipientPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidRange is a submission that passed every rule.
type ValidRange struct {
	Start     time.Time
	End       time.Time
	Recipient string
}

// ValidateSubmission checks a raw (start, end, recipient) triple. Rules run
// in a fixed order and the first violation wins: presence of all fields,
// start parses, end parses, start strictly before end, recipient looks like
// an email address. No side effects.
func ValidateSubmission(start, end, recipient string) (*ValidRange, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" || strings.TrimSpace(recipient) == "" {
		return nil, domain.ErrMissingField
	}
	startAt, err := parseTimestamp(start)
	if err != nil {
		return nil, domain.ErrMalformedStart
	}
	endAt, err := parseTimestamp(end)
	if err != nil {
		return nil, domain.ErrMalformedEnd
	}
	if !startAt.Before(endAt) {
		return nil, domain.ErrRangeInverted
	}
	if !recipientPattern.MatchString(recipient) {
		return nil, domain.ErrMalformedRecipient
	}
	return &ValidRange{Start: startAt, End: endAt, Recipient: recipient}, nil
}

// ValidateRange checks a raw (start, end) pair with the same ordered rules,
// minus the recipient.
func ValidateRange(start, end string) (startAt, endAt time.Time, err error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return time.Time{}, time.Time{}, domain.ErrMissingField
	}
	startAt, err = parseTimestamp(start)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrMalformedStart
	}
	endAt, err = parseTimestamp(end)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrMalformedEnd
	}
	if !startAt.Before(endAt) {
		return time.Time{}, time.Time{}, domain.ErrRangeInverted
	}
	return startAt, endAt, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339 {
			t, err = time.Parse(layout, raw)
		} else {
			t, err = time.ParseInLocation(layout, raw, time.Local)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
