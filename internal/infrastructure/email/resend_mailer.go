package email

import (
	"context"
	"errors"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

var ErrEmptyRecipient = errors.New("email recipient is empty")

type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendMailer delivers through the Resend API. Without an API key it only
// logs, so local and test environments never send real mail.
type ResendMailer struct {
	sender emailSender
	from   string
	logger *zap.Logger
}

var _ interfaces.IMailer = (*ResendMailer)(nil)

func NewResendMailer(apiKey, from string, logger *zap.Logger) *ResendMailer {
	m := &ResendMailer{from: from, logger: logger.With(zap.String("component", "mailer"))}
	if apiKey == "" {
		m.logger.Warn("RESEND_API_KEY not configured; emails will be logged and skipped")
		return m
	}
	m.sender = resend.NewClient(apiKey).Emails
	return m
}

func (m *ResendMailer) Send(ctx context.Context, msg entities.Email) error {
	if msg.To == "" {
		return ErrEmptyRecipient
	}
	if m.sender == nil {
		m.logger.Info("email skipped", zap.String("subject", msg.Subject))
		return nil
	}

	resp, err := m.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return err
	}
	m.logger.Info("email sent", zap.String("subject", msg.Subject), zap.String("provider_id", resp.Id))
	return nil
}
