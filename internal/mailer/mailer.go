package mailer

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
)

// Account is an outbound identity override: its address becomes the
// envelope sender and, when credentials are set, they replace the default
// SMTP auth.
type Account struct {
	Email    string
	Username string
	Password string
}

// Message is one outbound email. HTML bodies are sent as-is; the transport
// performs no content inspection.
type Message struct {
	To      string
	Subject string
	HTML    string
	// Account optionally overrides the default outbound identity
	Account *Account
}

// Mailer transmits email. "Accepted by transport" is treated as sent; there
// is no delivery guarantee beyond what the relay provides.
type Mailer interface {
	// Send transmits the message and returns a provider message identifier
	Send(msg *Message) (string, error)
}

// SMTPMailer sends mail through a configured SMTP relay
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
}

// NewSMTPMailer creates an SMTPMailer with the default outbound identity
func NewSMTPMailer(host string, port int, username, password, from, fromName string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

// Send transmits one message. Port 465 uses implicit TLS; other ports go
// through smtp.SendMail which negotiates STARTTLS when offered.
func (m *SMTPMailer) Send(msg *Message) (string, error) {
	if msg == nil {
		return "", errors.New("message cannot be nil")
	}
	if msg.To == "" {
		return "", errors.New("message recipient cannot be empty")
	}
	if m.host == "" {
		return "", errors.New("smtp host is not configured")
	}

	fromEmail := m.from
	username := m.username
	password := m.password
	if msg.Account != nil {
		if msg.Account.Email != "" {
			fromEmail = msg.Account.Email
		}
		if msg.Account.Username != "" {
			username = msg.Account.Username
			password = msg.Account.Password
		}
	}
	if fromEmail == "" {
		return "", errors.New("from address is not configured")
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), m.host)
	payload := m.buildMessage(fromEmail, msg, messageID)

	auth := smtp.PlainAuth("", username, password, m.host)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var err error
	if m.port == 465 {
		err = m.sendTLS(addr, auth, fromEmail, msg.To, payload)
	} else {
		err = smtp.SendMail(addr, auth, fromEmail, []string{msg.To}, payload)
	}
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return messageID, nil
}

// sendTLS speaks SMTP over an implicit TLS connection (port 465)
func (m *SMTPMailer) sendTLS(addr string, auth smtp.Auth, from, to string, payload []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.host})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	writer, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := writer.Write(payload); err != nil {
		writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func (m *SMTPMailer) buildMessage(fromEmail string, msg *Message, messageID string) []byte {
	from := fromEmail
	if m.fromName != "" && msg.Account == nil {
		from = fmt.Sprintf("%s <%s>", m.fromName, fromEmail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Message-ID: %s\r\n", messageID)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	return []byte(b.String())
}
