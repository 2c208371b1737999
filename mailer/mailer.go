package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

//go:generate go tool mockgen -source=./mailer.go -destination=./test/mock_mailer.go -package test

type Message struct {
	To      string
	Subject string
	Lines   []string
}

type Sender interface {
	Send(ctx context.Context, message Message) error
}

func NewSender(cfg *Config) Sender {
	return &smtpSender{cfg: cfg}
}

type smtpSender struct {
	cfg *Config
}

var _ Sender = &smtpSender{}

func (s *smtpSender) Send(_ context.Context, message Message) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.FromAddress, []string{message.To}, s.body(message)); err != nil {
		return fmt.Errorf("unable to send mail to %s: %w", message.To, err)
	}
	return nil
}

func (s *smtpSender) body(message Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.FromAddress)
	fmt.Fprintf(&b, "To: %s\r\n", message.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", message.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(strings.Join(message.Lines, "\r\n\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
