package notification

import (
	"context"
)

type Email struct {
	To       string
	From     string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// Transport delivers a single email and returns the message id it was sent with.
type Transport interface {
	Send(ctx context.Context, email Email) (string, error)
}
