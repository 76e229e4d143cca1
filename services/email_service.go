package services

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/diyahomestylist/poppyandteal/config"
	"github.com/diyahomestylist/poppyandteal/models"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewEmailService returns an error when SMTP or the seller's address is not configured.
func NewEmailService(cfg *config.Config) (*EmailService, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration is missing")
	}
	if cfg.AdminEmail == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL is not set")
	}

	return &EmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPUser,
		to:     cfg.AdminEmail,
	}, nil
}

func (s *EmailService) NotifyContact(req models.ContactRequest) error {
	subject := req.Subject
	if subject == "" {
		subject = "New message"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Reply-To", req.Email)
	m.SetHeader("Subject", "Poppy and Teal - "+subject)
	m.SetBody("text/html", contactBody(req))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func contactBody(req models.ContactRequest) string {
	message := strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>")
	return fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif; padding: 20px; background-color: #f4f4f4;">
			<div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
				<h2 style="color: #2f6f6a;">New enquiry from the storefront</h2>
				<p><strong>Name:</strong> %s</p>
				<p><strong>Email:</strong> %s</p>
				<p><strong>Subject:</strong> %s</p>
				<hr style="border: none; border-top: 1px solid #eee;">
				<p>%s</p>
			</div>
		</body>
		</html>
	`, html.EscapeString(req.Name), html.EscapeString(req.Email), html.EscapeString(req.Subject), message)
}
