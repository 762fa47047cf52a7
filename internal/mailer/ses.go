// Package mailer provides domain.Mailer implementations for delivering
// account confirmation links.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/msomdec/geoservice-auth/internal/domain"
)

const confirmationSubject = "Confirm your Geoservice account"

var confirmationBody = template.Must(template.New("confirmation").Parse(`
<h1>Welcome to Geoservice!</h1>
<p>Please click the link below to confirm your email address:</p>
<a href="{{.Link}}">Confirm my email</a>
<p>If you did not sign up, please ignore this email.</p>
`))

// SESMailer sends confirmation emails through Amazon SES.
type SESMailer struct {
	client  *ses.Client
	sender  string
	baseURL string
}

var _ domain.Mailer = (*SESMailer)(nil)

// NewSESMailer builds an SES-backed mailer. Credentials and region come
// from the standard AWS configuration chain; an explicit region
// overrides it.
func NewSESMailer(ctx context.Context, sender, baseURL, region string) (*SESMailer, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &SESMailer{
		client:  ses.NewFromConfig(cfg),
		sender:  sender,
		baseURL: baseURL,
	}, nil
}

// SendConfirmation delivers the confirmation link embedding the raw
// token to the given address.
func (m *SESMailer) SendConfirmation(ctx context.Context, toEmail, token string) error {
	var body bytes.Buffer
	if err := confirmationBody.Execute(&body, struct{ Link string }{Link: ConfirmationLink(m.baseURL, token)}); err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(m.sender),
		Destination: &types.Destination{ToAddresses: []string{toEmail}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(confirmationSubject)},
			Body:    &types.Body{Html: &types.Content{Data: aws.String(body.String())}},
		},
	})
	if err != nil {
		return fmt.Errorf("send confirmation email via SES: %w", err)
	}

	slog.Info("confirmation email sent", "to", toEmail)
	return nil
}

// ConfirmationLink builds the frontend URL a user follows to confirm
// their email address.
func ConfirmationLink(baseURL, token string) string {
	return fmt.Sprintf("%s/confirm-email?token=%s",
		strings.TrimRight(baseURL, "/"), url.QueryEscape(token))
}
