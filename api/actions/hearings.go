package actions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/models"
)

// HearingDateLayout is the accepted format of NewHearing.Date
const HearingDateLayout = "2006-01-02"

// NewHearing is the input of CreateCourtHearing. Type is optional.
type NewHearing struct {
	CaseNumber string `json:"caseNumber"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Location   string `json:"location"`
	Type       string `json:"type"`
}

// CreateCourtHearing schedules a hearing on an existing case and notifies the case
// owner. The hearing and the notification are stored together or not at all; the
// email and push go out after commit.
func (a *Actions) CreateCourtHearing(ctx context.Context, s *session.Session, in NewHearing) models.ActionResult {
	if res, ok := authorize(s, models.RoleLawyer, models.RoleAdmin); !ok {
		return res
	}
	if !required(in.CaseNumber, in.Date, in.Time, in.Location) {
		return models.Fail(models.KindValidation, "All fields are required")
	}
	date, err := time.Parse(HearingDateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return models.Fail(models.KindValidation, "Invalid hearing date")
	}

	c, res, ok := a.findCase(ctx, ByNumber(in.CaseNumber))
	if !ok {
		return res
	}
	if s.Role == models.RoleLawyer && c.Details.LawyerID != s.AccountID {
		return models.Fail(models.KindForbidden, "You are not assigned to this case")
	}
	if c.Details.Status == models.CaseStatusClosed {
		return models.Fail(models.KindConflict, "Case is closed")
	}
	owner, err := a.store.Accounts.FindByID(ctx, c.Details.UserID)
	if err != nil {
		return internal("Failed to create court hearing", err, "caseId", c.ID)
	}

	hearing := &models.CourtHearing{
		ID: a.newID(),
		Details: models.HearingDetails{
			CaseID:     c.ID,
			CaseNumber: c.Details.CaseNumber,
			Date:       date,
			Time:       strings.TrimSpace(in.Time),
			Location:   strings.TrimSpace(in.Location),
			Type:       strings.TrimSpace(in.Type),
			CreatedBy:  s.AccountID,
			CreatedAt:  a.now(),
		},
	}
	d := hearing.Details
	n := a.notification(*owner, "Court hearing scheduled",
		fmt.Sprintf("A court hearing for case %s has been scheduled for %s at %s, %s.",
			d.CaseNumber, d.Date.Format("January 2, 2006"), d.Time, d.Location),
		c.ID, models.EmailEnvelope{
			CaseNumber: d.CaseNumber,
			Date:       d.Date,
			Time:       d.Time,
			Location:   d.Location,
			CTAURL:     a.dashboardURL(),
			CTAText:    "View hearing",
		})

	err = a.store.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := a.store.Hearings.Insert(ctx, hearing); err != nil {
			return err
		}
		return a.store.Notifications.Insert(ctx, &n)
	})
	if err != nil {
		return internal("Failed to create court hearing", err, "caseId", c.ID)
	}

	a.deliver(outbound{n: n, to: *owner})
	return models.Ok("Court hearing created successfully", hearing)
}
