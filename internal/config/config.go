package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"cjdelfin.dev/internal/content"
	"cjdelfin.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	Env             string        `env:"APP_ENV" envDefault:"development"`
	DataPath        string        `env:"PORTFOLIO_DATA"`
	ContactDBPath   string        `env:"CONTACT_DB_PATH"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Email           EmailConfig

	Portfolio *models.Portfolio
}

// EmailConfig selects and configures the contact form delivery provider
type EmailConfig struct {
	Provider string `env:"EMAIL_PROVIDER" envDefault:"log"`
	To       string `env:"CONTACT_TO_EMAIL"`

	EmailJSServiceID  string `env:"EMAILJS_SERVICE_ID"`
	EmailJSTemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	EmailJSPublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
	EmailJSEndpoint   string `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`

	SMTPHost string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
}

// Load reads the environment and the portfolio fixture
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DataPath == "" {
		cfg.Portfolio = content.Load()
		return &cfg, nil
	}

	portfolio, err := content.LoadFile(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	cfg.Portfolio = portfolio
	return &cfg, nil
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
