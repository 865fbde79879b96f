// Package notify is the fire-and-forget outbound mail surface. Send failures
// are logged by callers and never escalate to saga failure.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"edusitepro_backend/internals/configs"
)

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	return &SMTPMailer{
		Host: configs.GetEnv("SMTP_HOST"),
		Port: configs.GetEnv("SMTP_PORT", "587"),
		User: configs.GetEnv("SMTP_USER"),
		Pass: configs.GetEnv("SMTP_PASS"),
		From: configs.GetEnv("SMTP_FROM", "no-reply@edusitepro.co.za"),
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if m.Host == "" {
		return fmt.Errorf("smtp not configured")
	}
	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		htmlBody,
	}, "\r\n")

	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, []byte(msg))
}

// WelcomeEmail builds the guardian welcome body with the temporary password
// and mobile-app links.
func WelcomeEmail(guardianName, tempPassword string) string {
	return fmt.Sprintf(`<h2>Welcome to EduSitePro, %s!</h2>
<p>Your parent account has been created. Sign in with your email and this temporary password:</p>
<p><strong>%s</strong></p>
<p>Please change it after your first login.</p>
<p>Get the app: <a href="https://apps.apple.com/app/edusitepro">iOS</a> ·
<a href="https://play.google.com/store/apps/details?id=za.co.edusitepro">Android</a></p>`,
		guardianName, tempPassword)
}

// CombinedWelcomeEmail is sent when an organization signup goes live across
// both platforms; each link is a password-reset deep link into one system.
func CombinedWelcomeEmail(name, primaryResetURL, siblingResetURL string) string {
	return fmt.Sprintf(`<h2>Welcome aboard, %s!</h2>
<p>Your organization is live on both platforms. Set your passwords here:</p>
<ul>
<li><a href="%s">EduSitePro site manager</a></li>
<li><a href="%s">KidsConnect school portal</a></li>
</ul>`, name, primaryResetURL, siblingResetURL)
}
