package mailer

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"
	"os"
)

type Config struct {
	SMTPHost string
	SMTPPort string
	Username string
	Password string
	Sender   string
	SiteURL  string
}

func LoadConfig() Config {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}
	return Config{
		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		Sender:   os.Getenv("SMTP_SENDER"),
		SiteURL:  siteURL,
	}
}

// Sender is what controllers depend on; every method is fire-and-forget.
type Sender interface {
	SendActivationEmail(recipient, username, token string)
	SendPasswordResetEmail(recipient, username, token string)
	SendNewsletterWelcomeEmail(recipient string)
	SendContactConfirmationEmail(recipient, name string)
}

// Mailer delivers transactional email over SMTP with STARTTLS.
type Mailer struct {
	config Config
}

var _ Sender = (*Mailer)(nil)

func New(config Config) *Mailer {
	return &Mailer{config: config}
}

func (m *Mailer) Send(recipient, subject, message string) error {
	smtpAddr := m.config.SMTPHost + ":" + m.config.SMTPPort

	client, err := smtp.Dial(smtpAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: m.config.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.SMTPHost)
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err = client.Mail(m.config.Sender); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to create mail writer: %w", err)
	}

	emailBody := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.config.Sender, recipient, subject, message)

	if _, err = writer.Write([]byte(emailBody)); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close mail writer: %w", err)
	}

	if err = client.Quit(); err != nil {
		log.Printf("Failed to close SMTP connection properly: %v", err)
	}

	return nil
}

// sendAsync fires the email off the request path. Delivery failures are
// logged and never surfaced to the triggering request.
func (m *Mailer) sendAsync(recipient, subject, message string) {
	go func() {
		if err := m.Send(recipient, subject, message); err != nil {
			log.Printf("Email to %s failed: %v", recipient, err)
		}
	}()
}

func (m *Mailer) SendActivationEmail(recipient, username, token string) {
	subject := "InkWave: Verify your account"
	message := fmt.Sprintf(
		"Hi %s,\n\nWelcome to InkWave! Confirm your account within 24 hours:\n\n%s/account/activate/%s\n\nIf you did not register, ignore this email.",
		username, m.config.SiteURL, token)
	m.sendAsync(recipient, subject, message)
}

func (m *Mailer) SendPasswordResetEmail(recipient, username, token string) {
	subject := "InkWave: Reset your password"
	message := fmt.Sprintf(
		"Hi %s,\n\nReset your password within 24 hours:\n\n%s/account/password/reset/%s\n\nIf you did not request this, ignore this email.",
		username, m.config.SiteURL, token)
	m.sendAsync(recipient, subject, message)
}

func (m *Mailer) SendNewsletterWelcomeEmail(recipient string) {
	subject := "Welcome to InkWave Newsletter"
	message := "Thanks for subscribing! You'll receive updates soon."
	m.sendAsync(recipient, subject, message)
}

func (m *Mailer) SendContactConfirmationEmail(recipient, name string) {
	subject := "InkWave: We've received your message"
	message := fmt.Sprintf(
		"Hi %s,\n\nThanks for reaching out. Our team has received your message and will get back to you shortly.",
		name)
	m.sendAsync(recipient, subject, message)
}
