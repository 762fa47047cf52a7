package mailer_test

import (
	"context"
	"testing"

	"github.com/msomdec/geoservice-auth/internal/mailer"
)

func TestConfirmationLink(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		token   string
		want    string
	}{
		{
			"plain",
			"http://localhost:3000", "abc123",
			"http://localhost:3000/confirm-email?token=abc123",
		},
		{
			"trailing slash trimmed",
			"https://geoservice.example/", "abc123",
			"https://geoservice.example/confirm-email?token=abc123",
		},
		{
			"token is query escaped",
			"http://localhost:3000", "a b&c",
			"http://localhost:3000/confirm-email?token=a+b%26c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mailer.ConfirmationLink(tt.baseURL, tt.token); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLogMailer_SendConfirmation(t *testing.T) {
	m := mailer.NewLogMailer("http://localhost:3000")
	if err := m.SendConfirmation(context.Background(), "dev@example.com", "token"); err != nil {
		t.Fatalf("SendConfirmation: %v", err)
	}
}
