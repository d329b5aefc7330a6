// Package mail sends the shop's HTML notifications over SMTP. Delivery is
// fire-and-forget: callers never block on the transport and never observe a
// send failure beyond the log line and metric.
package mail

import (
	"crypto/tls"

	"gopkg.in/gomail.v2"

	"biccshop.org/internal/config"
	"biccshop.org/internal/ids"
	"biccshop.org/internal/obs"
)

// Sender delivers a single HTML message.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender implements Sender over gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg config.SMTP) *SMTPSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	return &SMTPSender{dialer: d, from: cfg.From}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", "<"+ids.New()+"@biccshop.org>")
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}

// NopSender drops messages; used when no SMTP account is configured and in
// tests.
type NopSender struct{}

func (NopSender) Send(string, string, string) error { return nil }

// FromConfig picks the SMTP sender when one is configured.
func FromConfig(cfg config.SMTP) Sender {
	if cfg.Configured() {
		return NewSMTPSender(cfg)
	}
	return NopSender{}
}

// SendAsync dispatches the message on its own goroutine. Failures are logged
// and counted, never propagated.
func SendAsync(s Sender, to, subject, htmlBody string) {
	go func() {
		if err := s.Send(to, subject, htmlBody); err != nil {
			obs.EmailSent("failed")
			obs.Log(map[string]any{
				"level": "error",
				"msg":   "email send failed",
				"to":    to,
				"error": err.Error(),
			})
			return
		}
		obs.EmailSent("sent")
	}()
}
