package service

import (
	"context"
)

// EmailMessage is a single multipart email to one recipient.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends email through an outgoing mail server.
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) error
}
