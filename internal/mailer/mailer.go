package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Mailer sends one message to one recipient. Implementations must be safe for
// concurrent use; the jobs worker and the newsletter bulk send share one.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTP sends through a plain SMTP relay.
type SMTP struct {
	Addr string // host:port
	From string
	User string
	Pass string
}

func (m *SMTP) Send(to, subject, body string) error {
	var auth smtp.Auth
	if m.User != "" {
		host := m.Addr
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", m.User, m.Pass, host)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n",
		m.From, to, subject, body)

	if err := smtp.SendMail(m.Addr, auth, m.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

// Log writes sends to the process log instead of delivering them. Used in
// development when no SMTP relay is configured.
type Log struct{}

func (Log) Send(to, subject, body string) error {
	log.Printf("[MAIL] to=%s subject=%q bytes=%d\n", to, subject, len(body))
	return nil
}
