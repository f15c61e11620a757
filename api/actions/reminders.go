package actions

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/legalaid-ng/legalaid-api/models"
)

// SendHearingReminders notifies the owner and the assigned lawyer of every hearing
// held on the UTC day of day. It returns how many notifications were stored. A
// failing hearing is logged and skipped.
func (a *Actions) SendHearingReminders(ctx context.Context, day time.Time) (int, error) {
	from := day.UTC().Truncate(24 * time.Hour)
	hearings, err := a.store.Hearings.Find(ctx, models.HearingFilter{
		From: from,
		To:   from.Add(24*time.Hour - time.Nanosecond),
	})
	if err != nil {
		return 0, fmt.Errorf("find hearings: %w", err)
	}

	sent := 0
	for _, h := range hearings {
		out, err := a.remind(ctx, h)
		if err != nil {
			zap.S().Errorw("failed to send hearing reminder", "error", err, "hearingId", h.ID)
			continue
		}
		a.deliver(out...)
		sent += len(out)
	}
	return sent, nil
}

func (a *Actions) remind(ctx context.Context, h models.CourtHearing) ([]outbound, error) {
	c, err := a.store.Cases.FindByID(ctx, h.Details.CaseID)
	if err != nil {
		return nil, err
	}
	if c.Details.Status == models.CaseStatusClosed {
		return nil, nil
	}

	ids := []string{c.Details.UserID}
	if c.Details.LawyerID != "" {
		ids = append(ids, c.Details.LawyerID)
	}
	d := h.Details
	var out []outbound
	for _, id := range ids {
		recipient, err := a.store.Accounts.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		n := a.notification(*recipient, "Court hearing reminder",
			fmt.Sprintf("Reminder: the hearing for case %s is on %s at %s, %s.",
				d.CaseNumber, d.Date.Format("January 2, 2006"), d.Time, d.Location),
			c.ID, models.EmailEnvelope{
				CaseNumber: d.CaseNumber,
				Date:       d.Date,
				Time:       d.Time,
				Location:   d.Location,
				CTAURL:     a.dashboardURL(),
				CTAText:    "View hearing",
			})
		out = append(out, outbound{n: n, to: *recipient})
	}

	err = a.store.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		for i := range out {
			if err := a.store.Notifications.Insert(ctx, &out[i].n); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
