// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"tripplanner-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendWelcomeEmail greets a freshly registered member
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to %s, %s!</h2>
		<p>Your account is ready. Create a trip, drop in your waypoints and
		let the planner check whether your dates actually work out.</p>
	`, es.config.FromName, name)

	return es.send(email, "Welcome to "+es.config.FromName, body)
}

// SendShareEmail sends a share link for a trip to a recipient
func (es *EmailService) SendShareEmail(recipient, tripTitle, shareURL string) error {
	body := fmt.Sprintf(`
		<h2>A trip has been shared with you</h2>
		<p>You have been invited to view the trip <strong>%s</strong>.</p>
		<p><a href="%s">Open the trip</a></p>
		<p>Anyone with this link can view the trip, so forward it carefully.</p>
	`, tripTitle, shareURL)

	return es.send(recipient, fmt.Sprintf("Trip shared with you: %s", tripTitle), body)
}

func (es *EmailService) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}
