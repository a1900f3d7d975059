package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned when a provider lacks credentials
var ErrNotConfigured = errors.New("email provider not configured")

// Sender delivers a validated message
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender
type SenderFunc func(ctx context.Context, msg Message) error

// Send calls f
func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// EmailJSSender delivers through the EmailJS REST API
type EmailJSSender struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	Client     *http.Client
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts the message as template params
func (s *EmailJSSender) Send(ctx context.Context, msg Message) error {
	if s.ServiceID == "" || s.TemplateID == "" || s.PublicKey == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:  s.ServiceID,
		TemplateID: s.TemplateID,
		UserID:     s.PublicKey,
		TemplateParams: map[string]string{
			"name":    msg.Name,
			"email":   msg.Email,
			"subject": msg.Subject,
			"message": msg.Message,
		},
	})
	if err != nil {
		return fmt.Errorf("encode emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs responded %d: %s", resp.StatusCode, bytes.TrimSpace(text))
	}
	return nil
}

// SMTPSender delivers through an SMTP relay with PLAIN auth
type SMTPSender struct {
	Host string
	Port string
	User string
	Pass string
	To   string

	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// Send composes and sends the message. Replies go to the submitter.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.User == "" || s.Pass == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	to := s.To
	if to == "" {
		to = s.User
	}
	send := s.sendMail
	if send == nil {
		send = smtp.SendMail
	}

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	if err := send(s.Host+":"+s.Port, auth, s.User, []string{to}, composeMail(s.User, to, msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func composeMail(from, to string, msg Message) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Subject, msg.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: Portfolio Contact: " + headerValue(msg.Subject) + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerValue(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerValue keeps user input on a single header line
func headerValue(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// LogSender logs submissions instead of delivering them
type LogSender struct {
	Logger *zap.Logger
}

// Send writes the message to the log
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.Logger.Info("contact message (not delivered)",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
		zap.Int("length", len(msg.Message)),
	)
	return nil
}
