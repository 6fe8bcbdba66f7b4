package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/config"
)

// Mailer sends the forgot-password message. A nil Mailer is a no-op so the
// server runs without SMTP configured (dev environments).
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg *config.Config) *Mailer {
	if cfg.SMTP_HOST == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTP_HOST, cfg.SMTP_PORT, cfg.SMTP_USER, cfg.SMTP_PASS),
		from:   cfg.SMTP_FROM,
	}
}

func (m *Mailer) SendPasswordReset(to, resetToken string) error {
	if m == nil {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password reset request")
	msg.SetBody("text/plain", fmt.Sprintf(
		"A password reset was requested for this address.\n\nReset code: %s\n\nIgnore this message if you did not request it.",
		resetToken,
	))
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: send reset: %w", err)
	}
	return nil
}
