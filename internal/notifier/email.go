package notifier

import (
	"context"
	"fmt"

	"github.com/nirapotta/sos-backend/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// SMTPEmailSender доставляет письма через SMTP (gomail). Без учетных
// данных работает в mock-режиме с логированием.
type SMTPEmailSender struct {
	dialer *gomail.Dialer
	from   string
	logger *logrus.Logger
}

// NewSMTPEmailSender создает отправителя писем из конфигурации
func NewSMTPEmailSender(cfg *config.Config, logger *logrus.Logger) *SMTPEmailSender {
	s := &SMTPEmailSender{
		from:   cfg.SMTPUser,
		logger: logger,
	}
	if cfg.SMTPHost != "" && cfg.SMTPUser != "" {
		s.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	}
	return s
}

// Send отправляет одно письмо с вложениями
func (s *SMTPEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	if s.dialer == nil {
		s.logger.WithFields(logrus.Fields{
			"to":          msg.To,
			"subject":     msg.Subject,
			"attachments": len(msg.Attachments),
		}).Info("Mock email send, SMTP credentials missing")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	for _, att := range msg.Attachments {
		if att.Filename != "" {
			m.Attach(att.Path, gomail.Rename(att.Filename))
		} else {
			m.Attach(att.Path)
		}
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: failed to send email to %s: %w", msg.To, err)
	}

	s.logger.WithField("to", msg.To).Info("Email delivered")
	return nil
}
