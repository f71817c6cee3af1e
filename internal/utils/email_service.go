package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// EmailService provides email delivery functionality.
type EmailService struct {
	smtpHost     string
	smtpPort     int
	smtpUsername string
	smtpPassword string
	fromName     string
}

// NewEmailService creates a new EmailService.
func NewEmailService(smtpHost string, smtpPort int, smtpUsername, smtpPassword, fromName string) *EmailService {
	return &EmailService{
		smtpHost:     smtpHost,
		smtpPort:     smtpPort,
		smtpUsername: smtpUsername,
		smtpPassword: smtpPassword,
		fromName:     fromName,
	}
}

// SendEmail sends an HTML email over TLS.
func (s *EmailService) SendEmail(from, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(from, s.fromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.smtpHost, s.smtpPort, s.smtpUsername, s.smtpPassword)

	return d.DialAndSend(m)
}

// GenerateInvitationEmailHTML renders the workspace invitation mail.
func (s *EmailService) GenerateInvitationEmailHTML(workspaceName, inviterName, role, joinURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta http-equiv="Content-Type" content="text/html; charset=UTF-8" />
	<meta name="viewport" content="width=device-width, initial-scale=1.0" />
	<title>You have been invited to %[1]s</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; background-color: #f7f9fc;">
	<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" style="max-width: 520px; margin: 0 auto; padding: 32px 16px;">
		<tr>
			<td style="background-color: #ffffff; border-radius: 8px; padding: 32px; border: 1px solid #e3e8ef;">
				<h1 style="margin: 0 0 16px; font-size: 20px; color: #1a2233;">Join the %[1]s workspace</h1>
				<p style="margin: 0 0 24px; font-size: 14px; color: #4a5568; line-height: 1.6;">
					%[2]s invited you to collaborate on the <strong>%[1]s</strong> workspace as a <strong>%[3]s</strong>.
				</p>
				<a href="%[4]s" style="display: inline-block; background-color: #2563eb; color: #ffffff; text-decoration: none; padding: 12px 24px; border-radius: 6px; font-size: 14px;">Accept invitation</a>
				<p style="margin: 24px 0 0; font-size: 12px; color: #8a94a6;">
					If you were not expecting this invitation you can ignore this email.
				</p>
			</td>
		</tr>
	</table>
</body>
</html>`, workspaceName, inviterName, role, joinURL)
}
