package mailer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

const senderEmailName = "Procurement Marketplace"

type EmailHeader struct {
	Subject string
	To      []string
}

// EmailSender delivers a single HTML email.
type EmailSender interface {
	SendEmail(ctx context.Context, header EmailHeader, htmlBody string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
}

type SMTPSender struct {
	client      *mail.Client
	fromAddress string
}

func NewSMTPSender(config SMTPConfig) (*SMTPSender, error) {
	client, err := mail.NewClient(config.Host,
		mail.WithPort(config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithUsername(config.Username),
		mail.WithPassword(config.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &SMTPSender{
		client:      client,
		fromAddress: config.FromAddress,
	}, nil
}

func (sender *SMTPSender) SendEmail(ctx context.Context, header EmailHeader, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.FromFormat(senderEmailName, sender.fromAddress); err != nil {
		return fmt.Errorf("failed to set From address: %w", err)
	}

	if err := msg.To(header.To...); err != nil {
		return fmt.Errorf("failed to set To address: %w", err)
	}

	msg.Subject(header.Subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := sender.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// LogSender only logs outgoing mail. Used when no SMTP server is configured.
type LogSender struct{}

func (LogSender) SendEmail(_ context.Context, header EmailHeader, _ string) error {
	log.Info().
		Strs("to", header.To).
		Str("subject", header.Subject).
		Msg("email not sent, SMTP is not configured")
	return nil
}
