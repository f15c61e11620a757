package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/legalaid-ng/legalaid-api/config"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

const (
	jobTimeout = 5 * time.Minute
	// pendingGrace is how long a pending email may wait for its first delivery before
	// the retry job treats it as lost
	pendingGrace = 10 * time.Minute
	retryBatch   = 100
)

// Mailer delivers a stored notification synchronously and records the outcome
type Mailer interface {
	DeliverNow(ctx context.Context, n models.Notification, recipient models.Account) models.ActionResult
}

// Reminders sends the reminders of the hearings held on a given day
type Reminders interface {
	SendHearingReminders(ctx context.Context, day time.Time) (int, error)
}

// Scheduler handles periodic background jobs: email retries and hearing reminders
type Scheduler struct {
	cron          *cron.Cron
	Notifications databases.NotificationDatabase
	Accounts      databases.AccountDatabase
	Mailer        Mailer
	Reminders     Reminders

	retrySchedule    string
	reminderSchedule string
	maxAttempts      int
	instanceID       string
	now              func() time.Time
}

// NewScheduler creates a new scheduler instance
func NewScheduler(conf *config.Config, store *databases.Store, mailer Mailer, reminders Reminders) *Scheduler {
	// Heroku sets DYNO to "web.1", "web.2", etc.
	instanceID := os.Getenv("DYNO")
	if instanceID == "" {
		instanceID = fmt.Sprintf("instance-%d", time.Now().UnixNano())
	}

	return &Scheduler{
		cron:             cron.New(cron.WithLocation(time.UTC)),
		Notifications:    store.Notifications,
		Accounts:         store.Accounts,
		Mailer:           mailer,
		Reminders:        reminders,
		retrySchedule:    conf.EmailRetrySchedule,
		reminderSchedule: conf.HearingReminderSchedule,
		maxAttempts:      conf.EmailMaxAttempts,
		instanceID:       instanceID,
		now:              time.Now,
	}
}

// Start registers the jobs and starts the cron runner
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.retrySchedule, s.retryEmailsJob); err != nil {
		return fmt.Errorf("register email retry job: %w", err)
	}
	if _, err := s.cron.AddFunc(s.reminderSchedule, s.hearingRemindersJob); err != nil {
		return fmt.Errorf("register hearing reminder job: %w", err)
	}

	s.cron.Start()
	zap.S().Infow("Scheduler started",
		"instance", s.instanceID,
		"emailRetry", s.retrySchedule,
		"hearingReminders", s.reminderSchedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Scheduler stopped")
}

func (s *Scheduler) retryEmailsJob() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	s.RetryEmails(ctx)
}

func (s *Scheduler) hearingRemindersJob() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	s.SendReminders(ctx)
}

// RetryEmails re-delivers failed emails and pending ones that were never picked up.
// It returns how many deliveries succeeded.
func (s *Scheduler) RetryEmails(ctx context.Context) int {
	if s.maxAttempts <= 0 {
		return 0
	}
	pending, err := s.Notifications.FindEmailRetries(ctx, s.maxAttempts, s.now().Add(-pendingGrace), retryBatch)
	if err != nil {
		zap.S().Errorw("failed to find emails to retry", "error", err)
		return 0
	}

	sent := 0
	for _, n := range pending {
		recipient, err := s.Accounts.FindByID(ctx, n.Details.RecipientID)
		if err != nil {
			zap.S().Errorw("failed to load notification recipient", "error", err,
				"notificationId", n.ID, "recipientId", n.Details.RecipientID)
			continue
		}
		if res := s.Mailer.DeliverNow(ctx, n, *recipient); res.Success {
			sent++
		}
	}

	if len(pending) > 0 {
		zap.S().Infow("Email retry complete",
			"instance", s.instanceID,
			"candidates", len(pending),
			"sent", sent)
	}
	return sent
}

// SendReminders sends reminders for tomorrow's hearings
func (s *Scheduler) SendReminders(ctx context.Context) int {
	tomorrow := s.now().UTC().Add(24 * time.Hour)
	sent, err := s.Reminders.SendHearingReminders(ctx, tomorrow)
	if err != nil {
		zap.S().Errorw("failed to send hearing reminders", "error", err)
		return 0
	}
	zap.S().Infow("Hearing reminders sent",
		"instance", s.instanceID,
		"day", tomorrow.Format("2006-01-02"),
		"notifications", sent)
	return sent
}
