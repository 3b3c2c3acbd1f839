package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
)

// Mailer delivers contact form messages.
type Mailer interface {
	Send(name, email, message string) error
}

var errMailerNotConfigured = errors.New("SMTP credentials not configured")

type unconfiguredMailer struct{}

func (unconfiguredMailer) Send(string, string, string) error { return errMailerNotConfigured }

// SMTPMailer sends contact messages through an SMTP relay.
type SMTPMailer struct {
	cfg  config.SMTP
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer returns a mailer for cfg.
func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

func (m *SMTPMailer) Send(name, email, message string) error {
	if !m.cfg.Configured() {
		return errMailerNotConfigured
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", oneLine(name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, oneLine(name), oneLine(email), message)

	msg := []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + oneLine(email) + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := m.send(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.To}, msg); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

// oneLine strips line breaks so form input cannot add mail headers.
func oneLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func (s *Server) contact(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("fullName"))
	email := strings.TrimSpace(c.PostForm("email"))
	message := strings.TrimSpace(c.PostForm("message"))

	if name == "" || email == "" || message == "" {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, email and message.",
		})
		return
	}

	if err := s.mailer.Send(name, email, message); err != nil {
		s.logger.Printf("Error sending email: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	s.logger.Printf("Email sent successfully from %s", oneLine(name))
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
