package actions

import (
	"context"
	"time"

	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/models"
)

const (
	lawyerDashboardItems = 3
	upcomingWindow       = 7 * 24 * time.Hour
	// AdminPageSize is the page size of admin listings
	AdminPageSize = 20
)

// ClientDashboard is the litigant's landing page data
type ClientDashboard struct {
	ActiveCases      int64                 `json:"activeCases"`
	Cases            []models.Case         `json:"cases"`
	UpcomingHearings []models.CourtHearing `json:"upcomingHearings"`
	Unread           int64                 `json:"unreadNotifications"`
}

// LawyerDashboard is the lawyer portal's landing page data
type LawyerDashboard struct {
	AssignedCases    int64                 `json:"assignedCases"`
	RecentAssigned   []models.Case         `json:"recentAssigned"`
	UpcomingHearings []models.CourtHearing `json:"upcomingHearings"`
	OpenCases        []models.Case         `json:"openCases"`
	Unread           int64                 `json:"unreadNotifications"`
}

// CaseDetail is a case with its hearings
type CaseDetail struct {
	Case     models.Case           `json:"case"`
	Hearings []models.CourtHearing `json:"hearings"`
}

var activeStatuses = []models.CaseStatus{models.CaseStatusOpen, models.CaseStatusAssigned}

// ClientDashboard loads the litigant's cases, their upcoming hearings and the unread
// notification count
func (a *Actions) ClientDashboard(ctx context.Context, s *session.Session) models.ActionResult {
	if res, ok := authorize(s, models.RoleUser); !ok {
		return res
	}
	active, err := a.store.Cases.Count(ctx, models.CaseFilter{UserID: s.AccountID, Statuses: activeStatuses})
	if err != nil {
		return internal("Failed to load dashboard", err, "accountId", s.AccountID)
	}
	cases, err := a.store.Cases.Find(ctx, models.CaseFilter{UserID: s.AccountID})
	if err != nil {
		return internal("Failed to load dashboard", err, "accountId", s.AccountID)
	}
	hearings, err := a.store.Hearings.Find(ctx, models.HearingFilter{CaseIDs: caseIDs(cases), From: a.today()})
	if err != nil {
		return internal("Failed to load dashboard", err, "accountId", s.AccountID)
	}
	unread, err := a.store.Notifications.CountUnread(ctx, s.AccountID)
	if err != nil {
		return internal("Failed to load dashboard", err, "accountId", s.AccountID)
	}

	return models.Ok("Dashboard loaded", ClientDashboard{
		ActiveCases:      active,
		Cases:            nonNilCases(cases),
		UpcomingHearings: nonNilHearings(hearings),
		Unread:           unread,
	})
}

// LawyerDashboard loads the assigned case count, the most recent assignments, the
// hearings of the coming week and the newest open cases
func (a *Actions) LawyerDashboard(ctx context.Context, s *session.Session) models.ActionResult {
	if res, ok := authorize(s, models.RoleLawyer); !ok {
		return res
	}
	assigned := models.CaseFilter{LawyerID: s.AccountID, Statuses: []models.CaseStatus{models.CaseStatusAssigned}}
	count, err := a.store.Cases.Count(ctx, assigned)
	if err != nil {
		return internal("Failed to load dashboard", err, "accountId", s.AccountID)
	}
	all, err := a.store.Cases.Find(ctx, assigned)
	if err != nil {
		return internal("Failed to load dashboard", err, "accountId", s.AccountID)
	}
	today := a.today()
	hearings, err := a.store.Hearings.Find(ctx, models.HearingFilter{
		CaseIDs: caseIDs(all),
		From:    today,
		To:      today.Add(upcomingWindow),
		Limit:   lawyerDashboardItems,
	})
	if err != nil {
		return internal("Failed to load dashboard", err, "accountId", s.AccountID)
	}
	open, err := a.store.Cases.Find(ctx, models.CaseFilter{
		Statuses: []models.CaseStatus{models.CaseStatusOpen},
		Limit:    lawyerDashboardItems,
	})
	if err != nil {
		return internal("Failed to load dashboard", err, "accountId", s.AccountID)
	}
	unread, err := a.store.Notifications.CountUnread(ctx, s.AccountID)
	if err != nil {
		return internal("Failed to load dashboard", err, "accountId", s.AccountID)
	}

	recent := all
	if len(recent) > lawyerDashboardItems {
		recent = recent[:lawyerDashboardItems]
	}
	return models.Ok("Dashboard loaded", LawyerDashboard{
		AssignedCases:    count,
		RecentAssigned:   nonNilCases(recent),
		UpcomingHearings: nonNilHearings(hearings),
		OpenCases:        nonNilCases(open),
		Unread:           unread,
	})
}

// LawyerCalendar lists every hearing of the lawyer's cases, earliest first
func (a *Actions) LawyerCalendar(ctx context.Context, s *session.Session) models.ActionResult {
	if res, ok := authorize(s, models.RoleLawyer); !ok {
		return res
	}
	cases, err := a.store.Cases.Find(ctx, models.CaseFilter{LawyerID: s.AccountID})
	if err != nil {
		return internal("Failed to load calendar", err, "accountId", s.AccountID)
	}
	hearings, err := a.store.Hearings.Find(ctx, models.HearingFilter{CaseIDs: caseIDs(cases)})
	if err != nil {
		return internal("Failed to load calendar", err, "accountId", s.AccountID)
	}
	return models.Ok("Calendar loaded", nonNilHearings(hearings))
}

// GetCase returns a case with its hearings. The owner, the assigned lawyer and admins
// may read any case; other lawyers may read open cases they could apply to.
func (a *Actions) GetCase(ctx context.Context, s *session.Session, ref CaseRef) models.ActionResult {
	if res, ok := authorize(s); !ok {
		return res
	}
	c, res, ok := a.findCase(ctx, ref)
	if !ok {
		return res
	}
	if !canRead(s, c) {
		return models.Fail(models.KindForbidden, "You are not allowed to view this case")
	}
	hearings, err := a.store.Hearings.Find(ctx, models.HearingFilter{CaseIDs: []string{c.ID}})
	if err != nil {
		return internal("Failed to load case", err, "caseId", c.ID)
	}
	return models.Ok("Case loaded", CaseDetail{Case: *c, Hearings: nonNilHearings(hearings)})
}

func canRead(s *session.Session, c *models.Case) bool {
	switch s.Role {
	case models.RoleAdmin:
		return true
	case models.RoleUser:
		return c.Details.UserID == s.AccountID
	case models.RoleLawyer:
		return c.Details.LawyerID == s.AccountID || c.Details.Status == models.CaseStatusOpen
	}
	return false
}

// ListCases pages through every case, optionally narrowed to one status
func (a *Actions) ListCases(ctx context.Context, s *session.Session, status models.CaseStatus, page int64) models.ActionResult {
	if res, ok := authorize(s, models.RoleAdmin); !ok {
		return res
	}
	filter := models.CaseFilter{Limit: AdminPageSize, Page: page}
	switch status {
	case "":
	case models.CaseStatusOpen, models.CaseStatusAssigned, models.CaseStatusClosed:
		filter.Statuses = []models.CaseStatus{status}
	default:
		return models.Fail(models.KindValidation, "Invalid case status")
	}
	cases, err := a.store.Cases.Find(ctx, filter)
	if err != nil {
		return internal("Failed to load cases", err, "status", status)
	}
	return models.Ok("Cases loaded", nonNilCases(cases))
}

// ListLawyers returns registered lawyers, newest first
func (a *Actions) ListLawyers(ctx context.Context, s *session.Session, limit int64) models.ActionResult {
	if res, ok := authorize(s, models.RoleAdmin); !ok {
		return res
	}
	if limit <= 0 {
		limit = AdminPageSize
	}
	lawyers, err := a.store.Accounts.FindByRole(ctx, models.RoleLawyer, limit)
	if err != nil {
		return internal("Failed to load lawyers", err)
	}
	if lawyers == nil {
		lawyers = []models.Account{}
	}
	return models.Ok("Lawyers loaded", lawyers)
}

// today is the start of the current UTC day
func (a *Actions) today() time.Time {
	return a.now().UTC().Truncate(24 * time.Hour)
}

func caseIDs(cases []models.Case) []string {
	ids := make([]string, 0, len(cases))
	for _, c := range cases {
		ids = append(ids, c.ID)
	}
	return ids
}

func nonNilCases(cases []models.Case) []models.Case {
	if cases == nil {
		return []models.Case{}
	}
	return cases
}

func nonNilHearings(hearings []models.CourtHearing) []models.CourtHearing {
	if hearings == nil {
		return []models.CourtHearing{}
	}
	return hearings
}
