package email

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/legalaid-ng/legalaid-api/models"
	templates "github.com/legalaid-ng/legalaid-api/templates/html"
)

// DateLayout is how hearing dates are written in emails
const DateLayout = "Monday, January 2, 2006"

// Message is a notification email before rendering. Date is optional; a zero value
// leaves it out of the email.
type Message struct {
	To            string
	RecipientName string
	Subject       string
	Body          string
	CaseNumber    string
	Date          time.Time
	Time          string
	Location      string
	CTAURL        string
	CTAText       string
}

// Dispatcher renders notification emails and hands them to a Sender
type Dispatcher struct {
	sender       Sender
	supportEmail string
	now          func() time.Time
}

// NewDispatcher returns a Dispatcher. A nil sender makes every Send fail fast with
// "Email is not configured".
func NewDispatcher(sender Sender, supportEmail string) *Dispatcher {
	return &Dispatcher{
		sender:       sender,
		supportEmail: supportEmail,
		now:          time.Now,
	}
}

// Configured reports whether a provider is wired in
func (d *Dispatcher) Configured() bool {
	return d != nil && d.sender != nil
}

// Send renders and delivers msg. It never panics or returns an error; every failure
// is logged and turned into an unsuccessful result.
func (d *Dispatcher) Send(ctx context.Context, msg Message) (result models.ActionResult) {
	defer func() {
		if r := recover(); r != nil {
			zap.S().Errorw("panic while sending email", "to", msg.To, "panic", r)
			result = models.Fail(models.KindInternal, "Failed to send email")
		}
	}()

	if !d.Configured() {
		return models.Fail(models.KindInternal, "Email is not configured")
	}
	to := strings.TrimSpace(msg.To)
	if to == "" {
		return models.Fail(models.KindValidation, "Recipient email is required")
	}

	data := templates.NotificationEmailData{
		RecipientName: msg.RecipientName,
		Subject:       msg.Subject,
		Message:       msg.Body,
		CaseNumber:    msg.CaseNumber,
		Time:          msg.Time,
		Location:      msg.Location,
		CTAURL:        msg.CTAURL,
		CTAText:       msg.CTAText,
		SupportEmail:  d.supportEmail,
		Year:          d.now().Year(),
	}
	if !msg.Date.IsZero() {
		data.Date = msg.Date.Format(DateLayout)
	}
	subject := msg.Subject
	if subject == "" {
		subject = "Notification"
	}

	receipt, err := d.sender.Send(ctx, Email{
		ToAddress: to,
		ToName:    msg.RecipientName,
		Subject:   subject,
		PlainText: templates.RenderNotificationText(data),
		HTML:      templates.RenderNotificationEmail(data),
	})
	if err != nil {
		zap.S().Errorw("failed to send email", "error", err, "to", to, "subject", subject)
		return models.Fail(models.KindInternal, "Failed to send email")
	}

	zap.S().Infow("email sent successfully", "to", to, "subject", subject, "statusCode", receipt.StatusCode)
	return models.Ok("Email sent successfully", receipt)
}
