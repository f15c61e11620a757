package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

// caseNumberAttempts bounds the retries when a generated case number is taken
const caseNumberAttempts = 5

// NewCase is the input of CreateCase
type NewCase struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CaseType    string `json:"caseType"`
}

// CreatedCase is returned by CreateCase
type CreatedCase struct {
	ID         string `json:"id"`
	CaseNumber string `json:"caseNumber"`
}

// CaseRef points at a case either by id or by case number
type CaseRef struct {
	ID     string
	Number string
}

// ByID references a case by its id
func ByID(id string) CaseRef { return CaseRef{ID: id} }

// ByNumber references a case by its case number
func ByNumber(n string) CaseRef { return CaseRef{Number: n} }

func (r CaseRef) empty() bool {
	return strings.TrimSpace(r.ID) == "" && strings.TrimSpace(r.Number) == ""
}

// CreateCase opens a new case owned by the signed in litigant
func (a *Actions) CreateCase(ctx context.Context, s *session.Session, in NewCase) models.ActionResult {
	if res, ok := authorize(s, models.RoleUser); !ok {
		return res
	}
	if !required(in.Title, in.Description, in.CaseType) {
		return models.Fail(models.KindValidation, "All fields are required")
	}

	now := a.now()
	c := &models.Case{
		ID: a.newID(),
		Details: models.CaseDetails{
			Title:       strings.TrimSpace(in.Title),
			Description: strings.TrimSpace(in.Description),
			CaseType:    strings.TrimSpace(in.CaseType),
			Status:      models.CaseStatusOpen,
			UserID:      s.AccountID,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	var err error
	for attempt := 0; attempt < caseNumberAttempts; attempt++ {
		c.Details.CaseNumber = CaseNumber(c.Details.CaseType, a.caseToken())
		err = a.store.Cases.Insert(ctx, c)
		if !errors.Is(err, databases.ErrDuplicate) {
			break
		}
	}
	if err != nil {
		return internal("Failed to create case", err, "userId", s.AccountID)
	}
	return models.Ok("Case created successfully", CreatedCase{ID: c.ID, CaseNumber: c.Details.CaseNumber})
}

// CaseNumber formats a case number from the case type and a random token. The prefix
// is the first two letters of the type, uppercased and padded with X.
func CaseNumber(caseType, token string) string {
	prefix := make([]rune, 0, 2)
	for _, r := range strings.ToUpper(caseType) {
		if r >= 'A' && r <= 'Z' {
			prefix = append(prefix, r)
			if len(prefix) == 2 {
				break
			}
		}
	}
	for len(prefix) < 2 {
		prefix = append(prefix, 'X')
	}
	return fmt.Sprintf("%s-%s", string(prefix), strings.ToUpper(token))
}

// randomCaseToken is the first segment of a random uuid, 8 hex characters
func randomCaseToken() string {
	token, _, _ := strings.Cut(uuid.NewString(), "-")
	return strings.ToUpper(token)
}

// CloseCase closes an assigned case. Only an admin or the assigned lawyer may close it;
// the owner is notified.
func (a *Actions) CloseCase(ctx context.Context, s *session.Session, ref CaseRef) models.ActionResult {
	if res, ok := authorize(s, models.RoleAdmin, models.RoleLawyer); !ok {
		return res
	}
	c, res, ok := a.findCase(ctx, ref)
	if !ok {
		return res
	}
	if s.Role == models.RoleLawyer && c.Details.LawyerID != s.AccountID {
		return models.Fail(models.KindForbidden, "You are not assigned to this case")
	}
	if c.Details.Status != models.CaseStatusAssigned {
		return models.Fail(models.KindConflict, "Only assigned cases can be closed")
	}
	owner, err := a.store.Accounts.FindByID(ctx, c.Details.UserID)
	if err != nil {
		return internal("Failed to close case", err, "caseId", c.ID)
	}

	n := a.notification(*owner, "Case closed",
		fmt.Sprintf("Your case %s has been closed.", c.Details.CaseNumber),
		c.ID, models.EmailEnvelope{CaseNumber: c.Details.CaseNumber, CTAURL: a.dashboardURL(), CTAText: "View case"})
	err = a.store.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := a.store.Cases.UpdateStatus(ctx, c.ID, models.CaseStatusClosed, a.now()); err != nil {
			return err
		}
		return a.store.Notifications.Insert(ctx, &n)
	})
	if err != nil {
		return internal("Failed to close case", err, "caseId", c.ID)
	}

	a.deliver(outbound{n: n, to: *owner})
	return models.Ok("Case closed successfully", nil)
}

// findCase resolves ref, turning a miss into a not found result
func (a *Actions) findCase(ctx context.Context, ref CaseRef) (*models.Case, models.ActionResult, bool) {
	if ref.empty() {
		return nil, models.Fail(models.KindValidation, "Case is required"), false
	}
	var (
		c   *models.Case
		err error
	)
	if ref.ID != "" {
		c, err = a.store.Cases.FindByID(ctx, strings.TrimSpace(ref.ID))
	} else {
		c, err = a.store.Cases.FindByNumber(ctx, strings.ToUpper(strings.TrimSpace(ref.Number)))
	}
	if errors.Is(err, databases.ErrNotFound) {
		return nil, models.Fail(models.KindNotFound, "Case not found"), false
	}
	if err != nil {
		return nil, internal("Failed to load case", err, "ref", ref), false
	}
	return c, models.ActionResult{}, true
}
