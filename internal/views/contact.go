package views

import (
	"strings"

	"github.com/a-h/templ"

	"cjdelfin.dev/internal/contact"
)

const (
	// SuccessMessage is shown after a message is delivered
	SuccessMessage = "Message sent successfully! I'll get back to you soon."
	// FailureMessage is shown when delivery fails
	FailureMessage = "Something went wrong. Please try again or email me directly."
)

// FormStatus is the outcome shown above the contact form
type FormStatus string

const (
	FormIdle    FormStatus = ""
	FormSuccess FormStatus = "success"
	FormError   FormStatus = "error"
)

// ContactFormState is everything needed to redraw the contact form
type ContactFormState struct {
	Values contact.Message
	Errors contact.FieldErrors
	Status FormStatus
}

type formField struct {
	name        string
	label       string
	kind        string
	placeholder string
}

func (f formField) id() string {
	return "contact-" + f.name
}

var contactFields = []formField{
	{name: "name", label: "Name", kind: "text", placeholder: "Your name"},
	{name: "email", label: "Email", kind: "email", placeholder: "you@example.com"},
	{name: "subject", label: "Subject", kind: "text", placeholder: "What is this about?"},
	{name: "message", label: "Message", kind: "textarea", placeholder: "Tell me about your project..."},
}

func fieldValue(m contact.Message, name string) string {
	switch name {
	case "name":
		return m.Name
	case "email":
		return m.Email
	case "subject":
		return m.Subject
	case "message":
		return m.Message
	}
	return ""
}

func fieldClass(errs contact.FieldErrors, f formField) string {
	if errs[f.name] != "" {
		return "field invalid"
	}
	return "field"
}

func mailto(email string) templ.SafeURL {
	return templ.URL("mailto:" + email)
}

func telHref(phone string) templ.SafeURL {
	return templ.SafeURL("tel:" + strings.ReplaceAll(phone, " ", ""))
}
