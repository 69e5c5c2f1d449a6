package email

// Message is one outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	ReplyTo  string // optional; set on studio notifications so a reply goes to the client
}

// Sender is the outbound-mail boundary. Implementations must respect a
// bounded send time; callers treat failures as best-effort.
type Sender interface {
	Send(msg *Message) error
}

// Config holds SMTP connection settings.
type Config struct {
	Host           string
	Port           int
	Username       string
	Password       string
	FromEmail      string
	FromName       string
	SendTimeoutSec int
}
