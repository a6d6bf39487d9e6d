// Package mail sends transactional email for the password reset flow.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sue-zadeh/fieldbase/internal/config"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

// Mailer sends password reset codes to staff.
type Mailer interface {
	SendResetCode(ctx context.Context, to, code string) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
	log logger.Logger
}

// NewSMTPMailer creates the SMTP-backed mailer.
func NewSMTPMailer(cfg config.SMTPConfig, log logger.Logger) Mailer {
	return &smtpMailer{cfg: cfg, log: log.WithComponent("smtp_mailer")}
}

func (m *smtpMailer) SendResetCode(ctx context.Context, to, code string) error {
	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&body, "To: %s\r\n", to)
	body.WriteString("Subject: FieldBase password reset\r\n")
	body.WriteString("\r\n")
	fmt.Fprintf(&body, "Your password reset code is %s.\r\n", code)
	body.WriteString("The code expires in 15 minutes. If you did not request a reset, ignore this email.\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(body.String())); err != nil {
		m.log.Error(ctx, "Failed to send reset email", err, logger.String("to", to))
		return err
	}
	m.log.Info(ctx, "Reset email sent", logger.String("to", to))
	return nil
}
