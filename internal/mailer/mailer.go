// AngelaMos | 2026
// mailer.go

// Package mailer sends the API's transactional email over SMTP. Sending is
// best-effort from the caller's point of view: services log a failed send
// but never fail the request over it.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/angelamos/accounts-api/internal/config"
)

// Mailer is what services depend on; tests swap in a recording fake.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Message names a template and its arguments rather than carrying a body,
// so callers stay out of the rendering business.
type Message struct {
	To       string
	Subject  string
	Template string
	Args     map[string]any
}

type SMTPSender struct {
	cfg config.MailConfig
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(_ context.Context, msg Message) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("mailer: smtp host not configured")
	}

	body, err := render(msg.Template, msg.Args)
	if err != nil {
		return fmt.Errorf("mailer: render %s: %w", msg.Template, err)
	}

	var raw strings.Builder
	raw.WriteString(fmt.Sprintf(
		"From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From,
	))
	raw.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	raw.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	raw.WriteString("MIME-Version: 1.0\r\n")
	raw.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	raw.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	if s.cfg.Secure {
		return s.sendTLS(addr, msg.To, raw.String())
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	return smtp.SendMail(
		addr, auth, s.cfg.From, []string{msg.To}, []byte(raw.String()),
	)
}

func (s *SMTPSender) sendTLS(addr, to, raw string) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.Host})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	//nolint:errcheck // connection teardown
	defer client.Quit()

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(raw)); err != nil {
		return err
	}
	return w.Close()
}
