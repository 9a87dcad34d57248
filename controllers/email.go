package controllers

import (
	"log"

	"github.com/go-gomail/gomail"
)

// Notifier sends appointment emails over SMTP. A nil *Notifier is valid and
// drops every message, which is how tests and SMTP-less deployments run.
type Notifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewNotifier builds a Notifier; an empty host disables sending.
func NewNotifier(host string, port int, user, password string) *Notifier {
	if host == "" {
		return nil
	}
	return &Notifier{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
	}
}

// Send delivers a plain-text message. Failures are logged, never surfaced:
// booking must not depend on the mail server.
func (n *Notifier) Send(to, subject, body string) {
	if n == nil || to == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		log.Printf("failed to send %q to %s: %v", subject, to, err)
	}
}
