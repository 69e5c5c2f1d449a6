package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// SMTPSender sends mail through gomail with a hard per-send timeout so a
// slow or broken mail server cannot stall the calling request.
type SMTPSender struct {
	cfg Config
}

func NewSMTPSender(cfg Config) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}
	if cfg.SendTimeoutSec <= 0 {
		cfg.SendTimeoutSec = 10
	}
	return &SMTPSender{cfg: cfg}, nil
}

func (s *SMTPSender) Send(msg *Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromEmail, s.cfg.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetBody("text/html", msg.HTMLBody)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	// gomail has no deadline support, so the dial+send runs in its own
	// goroutine and the timer wins on a hung server. The goroutine finishes
	// on its own once the TCP connection times out underneath it.
	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(time.Duration(s.cfg.SendTimeoutSec) * time.Second):
		return fmt.Errorf("smtp send to %s timed out after %ds", msg.To, s.cfg.SendTimeoutSec)
	}
}
