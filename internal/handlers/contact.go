package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"cjdelfin.dev/internal/contact"
	"cjdelfin.dev/internal/views"
)

const maxContactBody = 64 << 10

// ContactHandler accepts contact form submissions
type ContactHandler struct {
	contactService *contact.Service
	logger         *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *contact.Service, logger *zap.Logger) *ContactHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactHandler{contactService: cs, logger: logger}
}

// SubmitForm handles POST /contact and answers with the redrawn form
func (h *ContactHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err != nil {
		respondHTML(w, r, http.StatusBadRequest, views.ContactForm(views.ContactFormState{Status: views.FormError}))
		return
	}

	msg := contact.Message{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}

	_, err := h.contactService.Submit(r.Context(), msg)
	var verr *contact.ValidationError
	switch {
	case err == nil:
		respondHTML(w, r, http.StatusOK, views.ContactForm(views.ContactFormState{Status: views.FormSuccess}))
	case errors.As(err, &verr):
		respondHTML(w, r, http.StatusUnprocessableEntity, views.ContactForm(views.ContactFormState{
			Values: msg,
			Errors: verr.Fields,
		}))
	default:
		h.logger.Warn("contact delivery failed", zap.Error(err))
		respondHTML(w, r, http.StatusBadGateway, views.ContactForm(views.ContactFormState{
			Values: msg,
			Status: views.FormError,
		}))
	}
}

// SubmitJSON handles POST /api/contact
func (h *ContactHandler) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	var msg contact.Message
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&msg); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.contactService.Submit(r.Context(), msg)
	var verr *contact.ValidationError
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"id":      res.ID,
			"status":  res.Status,
			"message": views.SuccessMessage,
		})
	case errors.As(err, &verr):
		respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
	default:
		h.logger.Warn("contact delivery failed", zap.Error(err))
		respondError(w, http.StatusBadGateway, views.FailureMessage)
	}
}
