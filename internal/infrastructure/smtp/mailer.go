package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/go-intake-sheets/internal/config"
)

// Mailer delivers verification codes by email. At most one delivery
// attempt per call; no retry, no queue.
type Mailer interface {
	SendChallenge(ctx context.Context, to, code string) error
}

type smtpMailer struct {
	host     string
	port     string
	from     string
	password string
	timeout  time.Duration
}

// NewMailer builds a Mailer that speaks SMTP over implicit TLS, the
// transport the configured provider endpoint requires.
func NewMailer(cfg *config.Config) Mailer {
	return &smtpMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPEmail,
		password: cfg.SMTPPassword,
		timeout:  cfg.GatewayTimeout,
	}
}

const challengeSubject = "LinkedIn Intake System - Verification Code"

const challengeBody = `Hello,

Your verification code is: %s

The code is valid for 5 minutes, please use it promptly.

If you did not request this code, please ignore this email.

---
LinkedIn Intake System
`

func (m *smtpMailer) SendChallenge(ctx context.Context, to, code string) error {
	body := fmt.Sprintf(challengeBody, code)
	return m.send(ctx, to, challengeSubject, body)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	addr := net.JoinHostPort(m.host, m.port)
	dialer := &net.Dialer{Timeout: m.timeout}

	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: m.host})
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if m.from != "" {
		if err := c.Auth(smtp.PlainAuth("", m.from, m.password, m.host)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := c.Mail(m.from); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}
	return c.Quit()
}
