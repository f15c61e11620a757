package email

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

const deliveryTimeout = 15 * time.Second

// Notifier emails stored notifications to their recipient and records the outcome on
// the notification so the retry job can pick up failures.
type Notifier struct {
	dispatcher    *Dispatcher
	notifications databases.NotificationDatabase
	timeout       time.Duration
	now           func() time.Time
	wg            sync.WaitGroup
}

// NewNotifier returns a Notifier writing delivery state through notifications
func NewNotifier(dispatcher *Dispatcher, notifications databases.NotificationDatabase) *Notifier {
	return &Notifier{
		dispatcher:    dispatcher,
		notifications: notifications,
		timeout:       deliveryTimeout,
		now:           time.Now,
	}
}

// Deliver emails n to recipient in the background. It returns immediately.
func (nt *Notifier) Deliver(n models.Notification, recipient models.Account) {
	nt.wg.Add(1)
	go func() {
		defer nt.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				zap.S().Errorw("panic in notification email delivery", "notificationId", n.ID, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), nt.timeout)
		defer cancel()
		nt.DeliverNow(ctx, n, recipient)
	}()
}

// DeliverNow emails n synchronously and records sent, failed or skipped
func (nt *Notifier) DeliverNow(ctx context.Context, n models.Notification, recipient models.Account) models.ActionResult {
	if !nt.dispatcher.Configured() {
		nt.record(ctx, n, models.EmailSkipped, n.Details.EmailAttempts)
		return models.Fail(models.KindInternal, "Email is not configured")
	}

	e := n.Details.Email
	result := nt.dispatcher.Send(ctx, Message{
		To:            recipient.Details.Email,
		RecipientName: recipient.DisplayName(),
		Subject:       n.Details.Subject,
		Body:          n.Details.Message,
		CaseNumber:    e.CaseNumber,
		Date:          e.Date,
		Time:          e.Time,
		Location:      e.Location,
		CTAURL:        e.CTAURL,
		CTAText:       e.CTAText,
	})

	status := models.EmailSent
	if !result.Success {
		status = models.EmailFailed
	}
	nt.record(ctx, n, status, n.Details.EmailAttempts+1)
	return result
}

// Wait blocks until every background delivery has finished
func (nt *Notifier) Wait() {
	nt.wg.Wait()
}

func (nt *Notifier) record(ctx context.Context, n models.Notification, status models.EmailStatus, attempts int) {
	if err := nt.notifications.UpdateEmailStatus(ctx, n.ID, status, attempts, nt.now()); err != nil {
		zap.S().Errorw("failed to record email status", "error", err, "notificationId", n.ID, "status", status)
	}
}
