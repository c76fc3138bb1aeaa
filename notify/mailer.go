// Package notify sends transactional email. Delivery is best effort: order
// and booking flows call Send from a goroutine and a mail outage only shows
// up in the logs, never in a response.
package notify

import (
	"log"

	gomail "gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	sender string
}

func New(host string, port int, username, password, sender string) *Mailer {
	m := &Mailer{sender: sender}
	if username != "" {
		m.dialer = gomail.NewDialer(host, port, username, password)
	}
	return m
}

// Send delivers a plain-text message, logging and swallowing any failure.
// It blocks on the SMTP dial, so fire-and-forget callers run it in a
// goroutine.
func (m *Mailer) Send(to, subject, body string) {
	if err := m.TrySend(to, subject, body); err != nil {
		log.Printf("Failed to send %q to %s: %v", subject, to, err)
	}
}

// SendHTML delivers an HTML message, logging and swallowing any failure.
func (m *Mailer) SendHTML(to, subject, html string) {
	if err := m.deliver(to, subject, "text/html", html); err != nil {
		log.Printf("Failed to send %q to %s: %v", subject, to, err)
	}
}

// TrySend delivers a plain-text message and reports the failure to the
// caller. Used where the flow depends on the mail arriving, e.g. the signup
// verification code.
func (m *Mailer) TrySend(to, subject, body string) error {
	return m.deliver(to, subject, "text/plain", body)
}

func (m *Mailer) deliver(to, subject, contentType, body string) error {
	if m.dialer == nil {
		log.Printf("Mail not configured, skipping %q to %s", subject, to)
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody(contentType, body)
	return m.dialer.DialAndSend(msg)
}
