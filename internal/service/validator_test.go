package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-service/internal/domain"
)

func TestValidateSubmission_RuleOrder(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		recipient string
		wantErr   error
	}{
		{"empty start", "", "2025-06-01T11:00", "a@b.com", domain.ErrMissingField},
		{"empty end", "2025-06-01T10:00", "", "a@b.com", domain.ErrMissingField},
		{"empty recipient", "2025-06-01T10:00", "2025-06-01T11:00", "", domain.ErrMissingField},
		{"all empty", "", "", "", domain.ErrMissingField},
		// presence wins over later violations
		{"empty recipient and bad start", "not-a-date", "2025-06-01T11:00", "", domain.ErrMissingField},
		{"bad start", "not-a-date", "2025-06-01T11:00", "a@b.com", domain.ErrMalformedStart},
		// start is checked before end even when both are bad
		{"bad start and bad end", "not-a-date", "also-not-a-date", "a@b.com", domain.ErrMalformedStart},
		{"bad end", "2025-06-01T10:00", "nope", "a@b.com", domain.ErrMalformedEnd},
		{"start equals end", "2025-06-01T10:00", "2025-06-01T10:00", "a@b.com", domain.ErrRangeInverted},
		{"start after end", "2025-06-01T11:00", "2025-06-01T10:00", "a@b.com", domain.ErrRangeInverted},
		// wall clock later than start but the instant is earlier
		{"end earlier once offset applies", "2025-06-01T10:00:00Z", "2025-06-01T11:30:00+02:00", "a@b.com", domain.ErrRangeInverted},
		// inversion is checked before the recipient pattern
		{"inverted range and bad recipient", "2025-06-01T11:00", "2025-06-01T10:00", "not-an-email", domain.ErrRangeInverted},
		{"recipient without at", "2025-06-01T10:00", "2025-06-01T11:00", "plainaddress", domain.ErrMalformedRecipient},
		{"recipient without dot", "2025-06-01T10:00", "2025-06-01T11:00", "a@b", domain.ErrMalformedRecipient},
		{"recipient with space", "2025-06-01T10:00", "2025-06-01T11:00", "a b@c.com", domain.ErrMalformedRecipient},
		{"recipient with double at", "2025-06-01T10:00", "2025-06-01T11:00", "a@b@c.com", domain.ErrMalformedRecipient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := ValidateSubmission(tt.start, tt.end, tt.recipient)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, valid)
		})
	}
}

func TestValidateSubmission_Valid(t *testing.T) {
	valid, err := ValidateSubmission("2025-06-01T10:00", "2025-06-01T11:00", "a@b.com")

	require.NoError(t, err)
	assert.Equal(t, "a@b.com", valid.Recipient)
	assert.True(t, valid.Start.Before(valid.End))
	assert.Equal(t, time.Hour, valid.End.Sub(valid.Start))
}

func TestValidateSubmission_AcceptsRFC3339(t *testing.T) {
	valid, err := ValidateSubmission("2025-06-01T10:00:00Z", "2025-06-01T13:30:00+02:00", "user@example.org")

	require.NoError(t, err)
	assert.Equal(t, time.UTC, valid.Start.Location())
	assert.True(t, valid.Start.Before(valid.End))
	// 13:30+02:00 is 11:30Z; ordering compares instants, not wall clocks.
	assert.Equal(t, 90*time.Minute, valid.End.Sub(valid.Start))
}

func TestValidateSubmission_Deterministic(t *testing.T) {
	first, err1 := ValidateSubmission("2025-06-01T10:00", "2025-06-01T11:00", "a@b.com")
	second, err2 := ValidateSubmission("2025-06-01T10:00", "2025-06-01T11:00", "a@b.com")

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestValidateRange(t *testing.T) {
	start, end, err := ValidateRange("2025-06-01T10:00", "2025-06-01T11:00")
	require.NoError(t, err)
	assert.True(t, start.Before(end))

	_, _, err = ValidateRange("", "2025-06-01T11:00")
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, _, err = ValidateRange("2025-06-01T11:00", "2025-06-01T10:00")
	assert.ErrorIs(t, err, domain.ErrRangeInverted)
}
