// Package contact validates contact form submissions and hands them to an
// email delivery provider.
package contact

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"unicode/utf8"
)

// Message is one contact form submission
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field
func (m Message) Normalize() Message {
	return Message{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Subject: strings.TrimSpace(m.Subject),
		Message: strings.TrimSpace(m.Message),
	}
}

// FieldErrors maps a form field to its validation message
type FieldErrors map[string]string

// ValidationError is returned when a submission fails validation
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "invalid contact message: " + strings.Join(parts, "; ")
}

// Validate checks the submission. It returns nil or a *ValidationError.
func (m Message) Validate() error {
	m = m.Normalize()
	errs := FieldErrors{}
	if utf8.RuneCountInString(m.Name) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}
	if !validEmail(m.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if utf8.RuneCountInString(m.Subject) < 5 {
		errs["subject"] = "Subject must be at least 5 characters"
	}
	if utf8.RuneCountInString(m.Message) < 10 {
		errs["message"] = "Message must be at least 10 characters"
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// reject "Name <a@b>" forms; the field takes a bare address
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@")+1:], ".")
}
