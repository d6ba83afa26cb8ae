package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	mail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/config"
	"github.com/spec-kit/booking-service/internal/domain"
)

const confirmationSubject = "Your Selected Time Range"

// DeliveryReceipt reports a message handed off to the transport.
type DeliveryReceipt struct {
	MessageID string
}

// Notifier sends the booking confirmation for one time range. Implementations
// report failure through the returned error and never take the process down.
type Notifier interface {
	Send(ctx context.Context, start, end time.Time, recipient string) (*DeliveryReceipt, error)
	Configured() bool
}

// New selects the transport based on configuration. Missing credentials yield
// a notifier whose sends fail with domain.ErrMailNotConfigured.
func New(cfg config.MailConfig, logger *zap.Logger) Notifier {
	if !cfg.Configured() {
		logger.Warn("mail transport not fully configured; confirmation emails disabled")
		return &unconfiguredNotifier{}
	}
	return &smtpNotifier{cfg: cfg, logger: logger}
}

type unconfiguredNotifier struct{}

func (*unconfiguredNotifier) Send(context.Context, time.Time, time.Time, string) (*DeliveryReceipt, error) {
	return nil, domain.ErrMailNotConfigured
}

func (*unconfiguredNotifier) Configured() bool { return false }

type smtpNotifier struct {
	cfg    config.MailConfig
	logger *zap.Logger
}

func (n *smtpNotifier) Configured() bool { return true }

func (n *smtpNotifier) Send(ctx context.Context, start, end time.Time, recipient string) (*DeliveryReceipt, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return nil, fmt.Errorf("%w: invalid sender: %v", domain.ErrMailDelivery, err)
	}
	if err := msg.To(recipient); err != nil {
		return nil, fmt.Errorf("%w: invalid recipient: %v", domain.ErrMailDelivery, err)
	}
	msg.Subject(confirmationSubject)
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, textBody(start, end))
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody(start, end))

	client, err := mail.NewClient(n.cfg.Host,
		mail.WithPort(n.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	messageID := generatedMessageID(msg)
	n.logger.Info("confirmation email sent",
		zap.String("recipient", recipient),
		zap.String("message_id", messageID))
	return &DeliveryReceipt{MessageID: messageID}, nil
}

func textBody(start, end time.Time) string {
	return fmt.Sprintf("You have selected a time range from %s to %s.",
		humanInstant(start), humanInstant(end))
}

func htmlBody(start, end time.Time) string {
	return fmt.Sprintf("<p>You have selected a time range from <strong>%s</strong> to <strong>%s</strong>.</p>",
		humanInstant(start), humanInstant(end))
}

// humanInstant renders the instant the way JavaScript's toUTCString does,
// GMT suffix included.
func humanInstant(t time.Time) string {
	return t.UTC().Format("Mon, 02 Jan 2006 15:04:05") + " GMT"
}

func generatedMessageID(msg *mail.Msg) string {
	ids := msg.GetGenHeader(mail.HeaderMessageID)
	if len(ids) == 0 {
		return ""
	}
	return strings.Trim(ids[0], "<>")
}
