package email

import (
	"fmt"
	"net/smtp"
)

// Sender delivers plain text mail.
type Sender interface {
	SendEmail(to, subject, body string) error
}

// SMTPSender sends mail through an authenticated SMTP relay.
type SMTPSender struct {
	Host     string
	Port     string
	From     string
	Password string

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(host, port, from, password string) *SMTPSender {
	return &SMTPSender{Host: host, Port: port, From: from, Password: password, send: smtp.SendMail}
}

// SendEmail sends a plain text email using SMTP.
func (s *SMTPSender) SendEmail(to, subject, body string) error {
	auth := smtp.PlainAuth("", s.From, s.Password, s.Host)

	err := s.send(s.Host+":"+s.Port, auth, s.From, []string{to}, BuildMessage(to, subject, body))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// BuildMessage renders the headers and body of a plain text message.
func BuildMessage(to, subject, body string) []byte {
	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")
}
