package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("PORTFOLIO_DATA", "")
	os.Unsetenv("SERVER_ADDR")
	os.Unsetenv("PORTFOLIO_DATA")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q, want :8080", cfg.ServerAddr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if cfg.Email.Provider != "log" {
		t.Errorf("Email.Provider = %q, want log", cfg.Email.Provider)
	}
	if cfg.Portfolio == nil || cfg.Portfolio.Projects.Len() == 0 {
		t.Fatal("expected embedded portfolio")
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	if err := os.WriteFile(path, []byte("personal: {name: Env}\nprojects:\n  - {id: a, title: Alpha}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORTFOLIO_DATA", path)
	t.Setenv("EMAIL_PROVIDER", "smtp")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerAddr != ":9090" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr)
	}
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
	if cfg.Email.Provider != "smtp" || cfg.Email.SMTPPort != "587" {
		t.Errorf("Email = %+v", cfg.Email)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if cfg.Portfolio.Personal.Name != "Env" {
		t.Errorf("Portfolio.Personal.Name = %q", cfg.Portfolio.Personal.Name)
	}
}

func TestLoadMissingDataFile(t *testing.T) {
	t.Setenv("PORTFOLIO_DATA", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error")
	}
}
