package email

import "klodtattoo_backend/internal/logger"

// NopSender stands in when SMTP is not configured. Sends are dropped with
// a log line so local environments still exercise the notification path.
type NopSender struct{}

func (NopSender) Send(msg *Message) error {
	logger.Debug("email sending disabled, dropping message", "to", msg.To, "subject", msg.Subject)
	return nil
}
