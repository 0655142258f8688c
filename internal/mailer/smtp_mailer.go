package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"portfolio/internal/apperr"
)

// SMTPConfig holds the relay connection details.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// SMTPMailer sends mail synchronously through a single SMTP relay using
// PLAIN auth. No retry; a failed send is reported to the caller.
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer creates a new SMTPMailer.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTPMailer{cfg: cfg}
}

// Send composes and delivers one message.
func (m *SMTPMailer) Send(msg Message) error {
	const op = "SMTPMailer.Send"

	if m.cfg.Host == "" || m.cfg.Port == "" {
		return apperr.E(apperr.CodeUnavailable, op, "mail relay is not configured", nil)
	}

	var sb strings.Builder
	sb.WriteString("From: " + m.cfg.From + "\r\n")
	sb.WriteString("To: " + msg.To + "\r\n")
	if msg.ReplyTo != "" {
		sb.WriteString("Reply-To: " + sanitizeHeader(msg.ReplyTo) + "\r\n")
	}
	sb.WriteString("Subject: " + sanitizeHeader(msg.Subject) + "\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(msg.Body)
	sb.WriteString("\r\n")

	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{msg.To}, []byte(sb.String())); err != nil {
		return apperr.E(apperr.CodeUnavailable, op, "could not deliver mail", err)
	}
	return nil
}

// sanitizeHeader keeps user-supplied values from injecting extra headers.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
