package mailer

import (
	"context"
	"log/slog"

	"github.com/msomdec/geoservice-auth/internal/domain"
)

// LogMailer writes the confirmation link to the log instead of sending
// email. It is used in local development when no SES sender address is
// configured.
type LogMailer struct {
	baseURL string
}

var _ domain.Mailer = (*LogMailer)(nil)

// NewLogMailer creates a mailer that only logs confirmation links.
func NewLogMailer(baseURL string) *LogMailer {
	return &LogMailer{baseURL: baseURL}
}

func (m *LogMailer) SendConfirmation(ctx context.Context, toEmail, token string) error {
	slog.Info("confirmation email (log only)",
		"to", toEmail,
		"link", ConfirmationLink(m.baseURL, token),
	)
	return nil
}
