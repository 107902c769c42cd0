// Package mail delivers outgoing email over SMTP.
package mail

import (
	"context"
	"log/slog"
	"time"

	"jobboard/config"
	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"go.uber.org/fx"
	"gopkg.in/gomail.v2"
)

// dialer is the part of *gomail.Dialer the sender needs.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// smtpSender implements service.MailSender with gomail.
type smtpSender struct {
	dialer  dialer
	from    string
	timeout time.Duration
	logger  *slog.Logger
}

// logSender only logs messages; used when SMTP is disabled.
type logSender struct {
	logger *slog.Logger
}

// SenderParams holds dependencies for the MailSender, injected by Fx.
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailSender returns an SMTP sender, or a logging sender when mail is disabled.
func NewMailSender(params SenderParams) service.MailSender {
	cfg := params.Config.Mail
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Mail delivery disabled, emails will only be logged")

		return &logSender{logger: params.Logger}
	}

	return newSMTPSender(
		gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		cfg.From,
		cfg.SendTimeout,
		params.Logger,
	)
}

func newSMTPSender(d dialer, from string, timeout time.Duration, logger *slog.Logger) *smtpSender {
	return &smtpSender{
		dialer:  d,
		from:    from,
		timeout: timeout,
		logger:  logger,
	}
}

// Send delivers the email, giving up after the configured timeout. gomail has no
// context support, so an abandoned send keeps running in its goroutine until the
// SMTP conversation ends.
func (s *smtpSender) Send(ctx context.Context, email service.Email) error {
	if len(email.To) == 0 {
		return errors.New("no recipients specified")
	}

	msg := gomail.NewMessage()
	s.setEmailMessage(msg, email)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "failed to send email")
		}
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Email sent", slog.String("subject", email.Subject))

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "email send timed out")
	}
}

func (s *smtpSender) setEmailMessage(msg *gomail.Message, email service.Email) {
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", email.To...)
	msg.SetHeader("Subject", email.Subject)

	// HTML is always the last alternative.
	switch {
	case email.HTMLBody == "":
		msg.SetBody("text/plain", email.Body)
	case email.Body == "":
		msg.SetBody("text/html", email.HTMLBody)
	default:
		msg.SetBody("text/plain", email.Body)
		msg.AddAlternative("text/html", email.HTMLBody)
	}
}

func (s *logSender) Send(ctx context.Context, email service.Email) error {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Email not sent, delivery disabled",
		slog.Any("to", email.To),
		slog.String("subject", email.Subject),
	)

	return nil
}
