package notification

import (
	"context"
	"log"
)

// SMSSender delivers a text message. The real deployment plugs a Twilio
// client in here; the default just logs, mirroring dev-mode behaviour.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

// EmailSender delivers a transactional email.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type LogSMSSender struct{}

func (LogSMSSender) SendSMS(_ context.Context, to, message string) error {
	log.Printf("[SMS] to=%s len=%d (sender not configured, logging only)", to, len(message))
	return nil
}

type LogEmailSender struct{}

func (LogEmailSender) SendEmail(_ context.Context, to, subject, _ string) error {
	log.Printf("[Email] to=%s subject=%q (sender not configured, logging only)", to, subject)
	return nil
}
