// Package app wires configuration, storage, services and the router into a
// runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"cjdelfin.dev/internal/config"
	"cjdelfin.dev/internal/contact"
	"cjdelfin.dev/internal/handlers"
	"cjdelfin.dev/internal/storage/sqlite"
)

// App is a configured server ready to run
type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *sqlite.Store
	handler http.Handler
}

// NewSender picks the delivery provider named by cfg.Provider
func NewSender(cfg config.EmailConfig, logger *zap.Logger) (contact.Sender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "log":
		return &contact.LogSender{Logger: logger}, nil
	case "emailjs":
		return &contact.EmailJSSender{
			Endpoint:   cfg.EmailJSEndpoint,
			ServiceID:  cfg.EmailJSServiceID,
			TemplateID: cfg.EmailJSTemplateID,
			PublicKey:  cfg.EmailJSPublicKey,
			Client:     &http.Client{Timeout: 10 * time.Second},
		}, nil
	case "smtp":
		to := cfg.To
		if to == "" {
			to = cfg.SMTPUser
		}
		return &contact.SMTPSender{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			To:   to,
		}, nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}

// New builds the app. The SQLite submission log is opened only when
// cfg.ContactDBPath is set.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sender, err := NewSender(cfg.Email, logger)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, logger: logger}

	var recorder contact.Recorder
	if cfg.ContactDBPath != "" {
		store, err := sqlite.Open(cfg.ContactDBPath)
		if err != nil {
			return nil, fmt.Errorf("open contact log: %w", err)
		}
		a.store = store
		recorder = store
		logger.Info("contact submission log enabled", zap.String("path", cfg.ContactDBPath))
	}

	contactService := contact.NewService(sender, recorder, logger)
	a.handler = handlers.SetupRoutes(cfg, contactService, logger)
	return a, nil
}

// Handler returns the root HTTP handler
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.ServerAddr,
		Handler:           a.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting",
			zap.String("addr", a.cfg.ServerAddr),
			zap.String("env", a.cfg.Env),
			zap.Int("projects", len(a.cfg.Portfolio.Projects)),
			zap.String("email_provider", a.cfg.Email.Provider),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.logger.Info("server stopped")
	return nil
}

// Close releases the submission log
func (a *App) Close() error {
	return a.store.Close()
}
