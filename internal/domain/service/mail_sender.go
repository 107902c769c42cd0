package service

import "context"

// Email is an outgoing message. HTMLBody takes precedence; Body becomes the plain text alternative.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// MailSender delivers email. Send returns once the message is accepted by the relay
// or ctx is done.
type MailSender interface {
	Send(ctx context.Context, email Email) error
}
