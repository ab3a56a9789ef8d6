// Package email delivers operational notifications over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/shared/biztime"
)

// ErrNotConfigured is returned when SMTP delivery is disabled or incomplete.
var ErrNotConfigured = fmt.Errorf("email service not configured")

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	OpsAddress  string
}

// TicketNotifier sends the operations team a message when a ticket is
// opened, reproducing the notification the support staff relied on.
type TicketNotifier interface {
	SendTicketOpened(ticketID uint, companyKey, author, description string) error
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendTicketOpened(ticketID uint, companyKey, author, description string) error {
	if s.config.Host == "" || s.config.OpsAddress == "" {
		return ErrNotConfigured
	}

	openedAt := biztime.FormatInBizTimezone(biztime.NowUTC(), "02/01/2006 15:04")

	subject := fmt.Sprintf("New ticket #%d from %s", ticketID, companyKey)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New support ticket</h2>
			<p><b>Ticket:</b> #%d</p>
			<p><b>Company:</b> %s</p>
			<p><b>Opened by:</b> %s at %s</p>
			<p><b>Problem:</b></p>
			<p>%s</p>
		</body>
		</html>
	`, ticketID, companyKey, author, openedAt, description)

	plainBody := fmt.Sprintf(`New support ticket

Ticket: #%d
Company: %s
Opened by: %s at %s

Problem:
%s
`, ticketID, companyKey, author, openedAt, description)

	return s.sendEmail(s.config.OpsAddress, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopNotifier is used when email delivery is disabled by configuration.
type NoopNotifier struct{}

func (NoopNotifier) SendTicketOpened(ticketID uint, companyKey, author, description string) error {
	return nil
}
