// Package mail delivers exported reports over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/argos/backend/internal/infrastructure/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Attachment is an in-memory file attached to a message
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is an outgoing e-mail
type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// SMTPMailer sends messages through gomail
type SMTPMailer struct {
	from   string
	sender gomail.Sender
	logger *zap.Logger
}

// NewSMTPMailer creates a mailer that dials the configured SMTP server per message
func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return NewSMTPMailerWithSender(cfg.From, gomail.SendFunc(func(from string, to []string, msg io.WriterTo) error {
		closer, err := dialer.Dial()
		if err != nil {
			return fmt.Errorf("failed to dial smtp %s:%d: %w", cfg.Host, cfg.Port, err)
		}
		defer closer.Close()
		return closer.Send(from, to, msg)
	}), logger)
}

// NewSMTPMailerWithSender creates a mailer over an arbitrary gomail.Sender
func NewSMTPMailerWithSender(from string, sender gomail.Sender, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{from: from, sender: sender, logger: logger.Named("mail")}
}

// Send delivers msg. ctx is checked before dialing; gomail itself is not cancellable.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("mail: no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTMLBody)
	for _, a := range msg.Attachments {
		data := a.Data
		gm.Attach(a.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
		)
	}

	if err := gomail.Send(m.sender, gm); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	m.logger.Info("Mail sent",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("attachments", len(msg.Attachments)),
	)
	return nil
}
