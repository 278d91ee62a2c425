package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

const (
	DefaultSMTPHost    = "smtp.gmail.com"
	DefaultSMTPPort    = 587
	DefaultSMTPTimeout = 30 * time.Second
)

var ErrMissingCredentials = errors.New("EMAIL_USER and EMAIL_PASS are required")

type SMTPConfig struct {
	Host     string        `yaml:"host" json:"host"`
	Port     int           `yaml:"port" json:"port"`
	Username string        `yaml:"username" json:"username"`
	Password string        `yaml:"password" json:"password"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout"`
}

func (c SMTPConfig) Configured() bool {
	return c.Username != "" && c.Password != ""
}

// SMTPTransport holds validated client options. go-mail clients keep the open
// connection in their own fields, so every Send dials with a client of its own.
type SMTPTransport struct {
	host   string
	opts   []mail.Option
	domain string
}

var _ Transport = &SMTPTransport{}

// NewSMTPTransport authenticates with PLAIN auth. Port 465 uses implicit TLS,
// every other port requires STARTTLS.
func NewSMTPTransport(conf SMTPConfig) (*SMTPTransport, error) {
	if !conf.Configured() {
		return nil, ErrMissingCredentials
	}
	host := conf.Host
	if host == "" {
		host = DefaultSMTPHost
	}
	port := conf.Port
	if port == 0 {
		port = DefaultSMTPPort
	}
	timeout := conf.Timeout
	if timeout == 0 {
		timeout = DefaultSMTPTimeout
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(conf.Username),
		mail.WithPassword(conf.Password),
		mail.WithTimeout(timeout),
	}
	if port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	transport := &SMTPTransport{host: host, opts: opts, domain: host}
	if _, err := transport.newClient(); err != nil {
		return nil, fmt.Errorf("failed to create smtp client for %s:%d: %w", host, port, err)
	}
	return transport, nil
}

func (t *SMTPTransport) newClient() (*mail.Client, error) {
	return mail.NewClient(t.host, t.opts...)
}

func (t *SMTPTransport) Send(ctx context.Context, email Email) (string, error) {
	msg, messageID, err := buildMessage(email, t.domain)
	if err != nil {
		return "", err
	}
	client, err := t.newClient()
	if err != nil {
		return "", fmt.Errorf("failed to create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	return messageID, nil
}

func buildMessage(email Email, domain string) (*mail.Msg, string, error) {
	msg := mail.NewMsg()
	if err := msg.From(email.From); err != nil {
		return nil, "", fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, "", fmt.Errorf("invalid to address: %w", err)
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return nil, "", fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.TextBody)
	msg.AddAlternativeString(mail.TypeTextHTML, email.HTMLBody)

	messageID := fmt.Sprintf("%s@%s", uuid.NewString(), domain)
	msg.SetMessageIDWithValue(messageID)
	msg.SetDate()
	return msg, "<" + messageID + ">", nil
}
