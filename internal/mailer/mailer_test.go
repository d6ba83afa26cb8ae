package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/config"
	"github.com/spec-kit/booking-service/internal/domain"
)

func TestNew_UnconfiguredTransport(t *testing.T) {
	notifier := New(config.MailConfig{}, zap.NewNop())

	assert.False(t, notifier.Configured())

	receipt, err := notifier.Send(context.Background(), time.Now(), time.Now().Add(time.Hour), "a@b.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMailNotConfigured)
	assert.Nil(t, receipt)
}

func TestNew_ConfiguredTransport(t *testing.T) {
	cfg := config.MailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "BookingService <noreply@example.com>",
	}

	notifier := New(cfg, zap.NewNop())
	assert.True(t, notifier.Configured())
}

func TestBodyComposition(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)

	text := textBody(start, end)
	assert.Equal(t, "You have selected a time range from Sun, 01 Jun 2025 10:00:00 GMT to Sun, 01 Jun 2025 11:00:00 GMT.", text)

	html := htmlBody(start, end)
	assert.Contains(t, html, "<strong>Sun, 01 Jun 2025 10:00:00 GMT</strong>")
	assert.Contains(t, html, "<strong>Sun, 01 Jun 2025 11:00:00 GMT</strong>")
}

func TestBodyComposition_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, loc)
	end := time.Date(2025, 6, 1, 13, 0, 0, 0, loc)

	text := textBody(start, end)
	assert.Contains(t, text, "10:00:00 GMT")
	assert.Contains(t, text, "11:00:00 GMT")
}
