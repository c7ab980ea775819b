// Package mailer delivers contact-form messages. Delivery semantics beyond
// "send or fail" are out of scope; the interface keeps the HTTP layer
// testable without an SMTP server.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	sc "github.com/dmitrijs2005/portfolio-backend/internal/server/config"
)

// Message is one contact-form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Mailer sends a contact-form message to the configured recipient.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer is a thin net/smtp implementation configured from server config.
type SMTPMailer struct {
	addr      string
	user      string
	password  string
	recipient string
}

func NewSMTPMailer(cfg *sc.Config) *SMTPMailer {
	return &SMTPMailer{
		addr:      cfg.SMTPAddr,
		user:      cfg.SMTPUser,
		password:  cfg.SMTPPassword,
		recipient: cfg.ContactRecipient,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	host := m.addr
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	auth := smtp.PlainAuth("", m.user, m.password, host)

	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Contact form: %s\r\nReply-To: %s\r\n\r\n%s\r\n",
		m.user, m.recipient, msg.Name, msg.Email, msg.Body)

	if err := smtp.SendMail(m.addr, auth, m.user, []string{m.recipient}, []byte(body)); err != nil {
		return fmt.Errorf("smtp send error: %w", err)
	}
	return nil
}
