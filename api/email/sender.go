// Package email sends the best-effort notification emails. Failures are logged and
// reported as a failed ActionResult, never returned as errors to the caller's flow.
package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Email is a fully rendered message ready for the provider
type Email struct {
	ToAddress string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

// Receipt is what the provider tells us about an accepted message
type Receipt struct {
	StatusCode int    `json:"statusCode"`
	MessageID  string `json:"messageId,omitempty"`
}

// Sender delivers a rendered email
type Sender interface {
	Send(ctx context.Context, e Email) (Receipt, error)
}

type sendgridSender struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewSendGridSender returns a Sender backed by the SendGrid v3 API. It returns nil
// when apiKey is empty so callers can treat email as not configured.
func NewSendGridSender(apiKey, fromAddress, fromName string) Sender {
	if apiKey == "" {
		return nil
	}
	return &sendgridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromAddress),
	}
}

func (s *sendgridSender) Send(ctx context.Context, e Email) (Receipt, error) {
	to := mail.NewEmail(e.ToName, e.ToAddress)
	message := mail.NewSingleEmail(s.from, e.Subject, to, e.PlainText, e.HTML)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return Receipt{}, err
	}
	if response.StatusCode >= 400 {
		return Receipt{StatusCode: response.StatusCode}, fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}

	receipt := Receipt{StatusCode: response.StatusCode}
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		receipt.MessageID = ids[0]
	}
	return receipt, nil
}
