package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func validMessage() Message {
	return Message{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Project inquiry",
		Message: "I would like to talk about a project.",
	}
}

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Message)
		wantFields []string
	}{
		{name: "valid", mutate: func(*Message) {}},
		{name: "short name", mutate: func(m *Message) { m.Name = "A" }, wantFields: []string{"name"}},
		{name: "name padded with spaces", mutate: func(m *Message) { m.Name = "  A  " }, wantFields: []string{"name"}},
		{name: "padded two-rune name", mutate: func(m *Message) { m.Name = "  Zé  " }},
		{name: "short multibyte subject", mutate: func(m *Message) { m.Subject = " ¿Qué " }, wantFields: []string{"subject"}},
		{name: "bad email", mutate: func(m *Message) { m.Email = "not-an-email" }, wantFields: []string{"email"}},
		{name: "email without domain dot", mutate: func(m *Message) { m.Email = "ada@localhost" }, wantFields: []string{"email"}},
		{name: "display name email", mutate: func(m *Message) { m.Email = "Ada <ada@example.com>" }, wantFields: []string{"email"}},
		{name: "short subject", mutate: func(m *Message) { m.Subject = "Hi" }, wantFields: []string{"subject"}},
		{name: "short message", mutate: func(m *Message) { m.Message = "Hello" }, wantFields: []string{"message"}},
		{name: "everything empty", mutate: func(m *Message) { *m = Message{} }, wantFields: []string{"name", "email", "subject", "message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validMessage()
			tt.mutate(&msg)
			err := msg.Validate()

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("fields = %v, want %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if verr.Fields[f] == "" {
					t.Errorf("missing error for %q in %v", f, verr.Fields)
				}
			}
		})
	}
}

type recorderStub struct {
	created []Message
	marks   []Status
	err     error
}

func (r *recorderStub) CreateSubmission(_ context.Context, msg Message) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.created = append(r.created, msg)
	return int64(len(r.created)), nil
}

func (r *recorderStub) MarkSubmission(_ context.Context, _ int64, status Status, _ string) error {
	r.marks = append(r.marks, status)
	return nil
}

func TestService_Submit(t *testing.T) {
	t.Run("delivers and records", func(t *testing.T) {
		var sent []Message
		rec := &recorderStub{}
		svc := NewService(SenderFunc(func(_ context.Context, m Message) error {
			sent = append(sent, m)
			return nil
		}), rec, zaptest.NewLogger(t))

		msg := validMessage()
		msg.Name = "  Ada Lovelace "
		res, err := svc.Submit(context.Background(), msg)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if res.Status != StatusSent || res.ID != 1 {
			t.Errorf("result = %+v", res)
		}
		if len(sent) != 1 || sent[0].Name != "Ada Lovelace" {
			t.Errorf("sent = %+v", sent)
		}
		if len(rec.marks) != 1 || rec.marks[0] != StatusSent {
			t.Errorf("marks = %v", rec.marks)
		}
	})

	t.Run("invalid message is not sent", func(t *testing.T) {
		called := false
		svc := NewService(SenderFunc(func(context.Context, Message) error {
			called = true
			return nil
		}), nil, nil)

		_, err := svc.Submit(context.Background(), Message{Name: "A"})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if called {
			t.Error("sender should not be called")
		}
	})

	t.Run("delivery failure", func(t *testing.T) {
		rec := &recorderStub{}
		boom := errors.New("boom")
		svc := NewService(SenderFunc(func(context.Context, Message) error { return boom }), rec, zaptest.NewLogger(t))

		res, err := svc.Submit(context.Background(), validMessage())
		if !errors.Is(err, ErrDelivery) || !errors.Is(err, boom) {
			t.Fatalf("expected ErrDelivery wrapping boom, got %v", err)
		}
		if res.Status != StatusFailed {
			t.Errorf("status = %q", res.Status)
		}
		if len(rec.marks) != 1 || rec.marks[0] != StatusFailed {
			t.Errorf("marks = %v", rec.marks)
		}
	})

	t.Run("recorder failure does not block delivery", func(t *testing.T) {
		rec := &recorderStub{err: errors.New("disk full")}
		svc := NewService(SenderFunc(func(context.Context, Message) error { return nil }), rec, zaptest.NewLogger(t))

		res, err := svc.Submit(context.Background(), validMessage())
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if res.ID != 0 || res.Status != StatusSent {
			t.Errorf("result = %+v", res)
		}
		if len(rec.marks) != 0 {
			t.Errorf("unexpected marks %v", rec.marks)
		}
	})
}

func TestEmailJSSender(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	sender := &EmailJSSender{Endpoint: srv.URL, ServiceID: "svc", TemplateID: "tpl", PublicKey: "pk"}
	if err := sender.Send(context.Background(), validMessage()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got.ServiceID != "svc" || got.TemplateID != "tpl" || got.UserID != "pk" {
		t.Errorf("request = %+v", got)
	}
	if got.TemplateParams["subject"] != "Project inquiry" || got.TemplateParams["email"] != "ada@example.com" {
		t.Errorf("template params = %v", got.TemplateParams)
	}
}

func TestEmailJSSenderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The Public Key is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	sender := &EmailJSSender{Endpoint: srv.URL, ServiceID: "svc", TemplateID: "tpl", PublicKey: "pk"}
	err := sender.Send(context.Background(), validMessage())
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Fatalf("expected 400 error, got %v", err)
	}

	unconfigured := &EmailJSSender{Endpoint: srv.URL}
	if err := unconfigured.Send(context.Background(), validMessage()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSMTPSender(t *testing.T) {
	var (
		gotAddr string
		gotTo   []string
		gotMsg  string
	)
	sender := &SMTPSender{
		Host: "smtp.example.com",
		Port: "587",
		User: "me@example.com",
		Pass: "secret",
		To:   "inbox@example.com",
		sendMail: func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotTo, gotMsg = addr, to, string(msg)
			return nil
		},
	}

	msg := validMessage()
	msg.Subject = "Hello\r\nBcc: victim@example.com"
	if err := sender.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotAddr != "smtp.example.com:587" {
		t.Errorf("addr = %q", gotAddr)
	}
	if len(gotTo) != 1 || gotTo[0] != "inbox@example.com" {
		t.Errorf("to = %v", gotTo)
	}
	if !strings.Contains(gotMsg, "Reply-To: ada@example.com\r\n") {
		t.Errorf("missing Reply-To header in %q", gotMsg)
	}
	if strings.Contains(gotMsg, "\r\nBcc:") {
		t.Errorf("header injection in %q", gotMsg)
	}

	unconfigured := &SMTPSender{Host: "smtp.example.com", Port: "587"}
	if err := unconfigured.Send(context.Background(), validMessage()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
