package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"github.com/Hemasri-atike/Ihire-sub000/config"
)

// Service sends transactional mail via SMTP. One instance is built at
// startup and shared across requests; the transport is never reconstructed
// per call.
type Service struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// InviteEmailData holds the data for company invite emails
type InviteEmailData struct {
	CompanyName string
	Role        string
	AcceptLink  string
	ExpiresAt   time.Time
}

// NewService creates the process-wide email service with Brevo SMTP configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// inviteEmailTemplate is the HTML template for company invite emails.
// The accept link carries the plaintext token; this email is the only place
// the token ever appears outside the issuing request.
var inviteEmailTemplate = template.Must(template.New("invite").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>You're invited to join {{.CompanyName}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .button { display: inline-block; padding: 12px 24px; background: #0066cc; color: white; text-decoration: none; border-radius: 4px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Join {{.CompanyName}} on iHire</h1>
        </div>
        <div class="content">
            <p>You have been invited to join <strong>{{.CompanyName}}</strong> as a <strong>{{.Role}}</strong>.</p>
            <p style="text-align: center; margin: 30px 0;">
                <a class="button" href="{{.AcceptLink}}">Accept Invitation</a>
            </p>
            <p>This invitation expires on {{.ExpiresAt.Format "January 2, 2006"}}. If the button does not work, copy this link into your browser:</p>
            <p>{{.AcceptLink}}</p>
        </div>
        <div class="footer">
            <p>If you were not expecting this invitation you can safely ignore this email.</p>
        </div>
    </div>
</body>
</html>`))

// SendInviteEmail delivers an invite email with the accept link to the invitee
func (s *Service) SendInviteEmail(to string, data InviteEmailData) error {
	var body bytes.Buffer
	if err := inviteEmailTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("Invitation to join %s", data.CompanyName)

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
