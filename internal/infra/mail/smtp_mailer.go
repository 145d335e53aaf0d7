// Package mail delivers notification emails over SMTP.
package mail

import (
	"context"
	"log/slog"
	"strings"

	"swirl/config"
	"swirl/internal/domain/service"
	"swirl/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

const defaultSMTPPort = 587

// smtpSender is the subset of *gomail.Client used by the mailer.
type smtpSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type smtpMailer struct {
	client smtpSender
	from   string
}

// NewMailer builds the SMTP mailer from configuration. Without an SMTP host
// every send fails, which the email channel reports as an unsent email.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil || strings.TrimSpace(cfg.SMTP.Host) == "" {
		logger.Warn("SMTP is not configured, email delivery disabled")

		return disabledMailer{}, nil
	}

	return NewSMTPMailer(cfg.SMTP)
}

// NewSMTPMailer creates a mailer backed by a go-mail client.
func NewSMTPMailer(cfg *config.SMTPConfig) (service.Mailer, error) {
	port := cfg.Port
	if port <= 0 {
		port = defaultSMTPPort
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(tlsPolicy(cfg.TLSPolicy)),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{client: client, from: cfg.From}, nil
}

func tlsPolicy(policy string) gomail.TLSPolicy {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "mandatory":
		return gomail.TLSMandatory
	case "none":
		return gomail.NoTLS
	default:
		return gomail.TLSOpportunistic
	}
}

// Send delivers a multipart (text + HTML) message.
func (m *smtpMailer) Send(ctx context.Context, msg *service.EmailMessage) error {
	built, err := m.buildMessage(msg)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, built); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}

func (m *smtpMailer) buildMessage(msg *service.EmailMessage) (*gomail.Msg, error) {
	if msg == nil || strings.TrimSpace(msg.To) == "" {
		return nil, errors.New("email recipient is required")
	}

	built := gomail.NewMsg()
	if err := built.From(m.from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := built.To(msg.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	built.Subject(msg.Subject)
	built.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		built.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}

	return built, nil
}

type disabledMailer struct{}

func (disabledMailer) Send(context.Context, *service.EmailMessage) error {
	return errors.New("mailer not configured")
}
