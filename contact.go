package main

import (
	"fmt"
	"net/smtp"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mithunxcpu/portfolio/internal/config"
)

// sendMail is swapped out in tests.
var sendMail = smtp.SendMail

func sendContactEmail(cfg config.SMTPConfig, name, email, message string) error {
	if cfg.User == "" || cfg.Pass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	name, email = headerSafe(name), headerSafe(email)
	toEmail := cfg.ToEmail
	if toEmail == "" {
		toEmail = cfg.User
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)

	if err := sendMail(cfg.Host+":"+cfg.Port, auth, cfg.User, []string{toEmail}, msg); err != nil {
		log.Printf("Error sending email: %v", err)
		return fmt.Errorf("send contact email: %w", err)
	}

	log.Printf("Email sent successfully from %s", name)
	return nil
}

// headerSafe keeps form input from starting a new mail header.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
