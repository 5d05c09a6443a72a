package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// SMTPConfig for the gomail provider.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	BaseURL   string // public URL used in verification/reset links
}

// GomailProvider sends through SMTP via gomail.
type GomailProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer TemplateRenderer
}

func NewGomailProvider(config *SMTPConfig, renderer TemplateRenderer) *GomailProvider {
	return &GomailProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}
}

func (p *GomailProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = m.FormatAddress(p.config.FromEmail, p.config.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.TextBody != "" {
		m.SetBody("text/plain", email.TextBody)
	}
	if email.HTMLBody != "" {
		if email.TextBody != "" {
			m.AddAlternative("text/html", email.HTMLBody)
		} else {
			m.SetBody("text/html", email.HTMLBody)
		}
	}

	return p.dialer.DialAndSend(m)
}

func (p *GomailProvider) SendVerification(to, token string) error {
	return p.sendTemplated(to, "Verify your email", "verification", TemplateData{
		"Username": to,
		"Link":     fmt.Sprintf("%s/verify-email?token=%s", p.config.BaseURL, token),
	})
}

func (p *GomailProvider) SendPasswordReset(to, token string) error {
	return p.sendTemplated(to, "Reset your password", "password_reset", TemplateData{
		"Link": fmt.Sprintf("%s/reset-password?token=%s", p.config.BaseURL, token),
	})
}

func (p *GomailProvider) sendTemplated(to, subject, templateName string, data TemplateData) error {
	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}

func (p *GomailProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

func (p *GomailProvider) Close() error {
	return nil
}
