package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers the transactional mail the admin flows produce. A nil-safe
// no-op implementation backs fixture mode.
type Sender interface {
	SendPasswordResetEmail(to, token string) error
	SendPasswordChangedEmail(to string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string
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

func (s *SMTPEmailService) SendPasswordResetEmail(to, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.config.BaseURL, token)

	subject := "Reset Your Password"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset Request</h2>
			<p>We received a request to reset the password of your facilitator account. Click the link below to reset it:</p>
			<p><a href="%s">Reset Password</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire shortly.</p>
			<p>If you didn't request a password reset, please ignore this email and your password will remain unchanged.</p>
		</body>
		</html>
	`, resetURL, resetURL)

	plainBody := fmt.Sprintf(`
Password Reset Request

We received a request to reset the password of your facilitator account. Visit the following URL to reset it:
%s

This link will expire shortly.

If you didn't request a password reset, please ignore this email and your password will remain unchanged.
	`, resetURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordChangedEmail(to string) error {
	subject := "Password Changed Successfully"
	htmlBody := `
		<html>
		<body>
			<h2>Password Changed</h2>
			<p>The password of your facilitator account has been changed.</p>
			<p>If you didn't make this change, please contact support immediately.</p>
		</body>
		</html>
	`

	plainBody := `
Password Changed

The password of your facilitator account has been changed.

If you didn't make this change, please contact support immediately.
	`

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopEmailService satisfies Sender without talking to any SMTP server.
// Fixture mode uses it so reset flows can be exercised offline.
type NoopEmailService struct{}

func NewNoopEmailService() *NoopEmailService { return &NoopEmailService{} }

func (NoopEmailService) SendPasswordResetEmail(string, string) error { return nil }
func (NoopEmailService) SendPasswordChangedEmail(string) error       { return nil }
