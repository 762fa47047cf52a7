package config_test

import (
	"strings"
	"testing"

	"github.com/msomdec/geoservice-auth/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "3001" {
		t.Fatalf("expected default port 3001, got %s", cfg.Port)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("expected default bcrypt cost 10, got %d", cfg.BcryptCost)
	}
	if cfg.FrontendURL == "" {
		t.Fatal("expected a default frontend URL")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error when JWT_SECRET is missing")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")

	_, err := config.Load()
	if err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected a JWT_SECRET length error, got %v", err)
	}
}

func TestLoad_BcryptCostOutOfRange(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("BCRYPT_COST", "99")

	_, err := config.Load()
	if err == nil || !strings.Contains(err.Error(), "BCRYPT_COST") {
		t.Fatalf("expected a BCRYPT_COST range error, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("AWS_SES_SENDER_EMAIL", "noreply@geoservice.example")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.BcryptCost != 4 || cfg.SESSenderEmail != "noreply@geoservice.example" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
