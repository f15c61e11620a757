package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

// NewCoverLetter is the input of SubmitCV
type NewCoverLetter struct {
	Email      string `json:"email"`
	CaseNumber string `json:"caseNumber"`
	Message    string `json:"message"`
}

// SubmitCV stores a lawyer's application to an open case. A lawyer may apply to the
// same case more than once.
func (a *Actions) SubmitCV(ctx context.Context, s *session.Session, in NewCoverLetter) models.ActionResult {
	if res, ok := authorize(s, models.RoleLawyer, models.RoleAdmin); !ok {
		return res
	}
	if !required(in.Email, in.CaseNumber, in.Message) {
		return models.Fail(models.KindValidation, "All fields are required")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if s.Role == models.RoleLawyer && !strings.EqualFold(email, s.Email) {
		return models.Fail(models.KindForbidden, "You can only apply as yourself")
	}

	lawyer, err := a.store.Accounts.FindByEmail(ctx, email)
	if errors.Is(err, databases.ErrNotFound) || (err == nil && lawyer.Details.Role != models.RoleLawyer) {
		return models.Fail(models.KindNotFound, "Lawyer not found")
	}
	if err != nil {
		return internal("Failed to submit CV", err, "email", email)
	}

	c, res, ok := a.findCase(ctx, ByNumber(in.CaseNumber))
	if !ok {
		return res
	}
	if c.Details.Status != models.CaseStatusOpen {
		return models.Fail(models.KindConflict, "Case is no longer open")
	}

	cl := &models.CoverLetter{
		ID: a.newID(),
		Details: models.CoverLetterDetails{
			CaseID:     c.ID,
			CaseNumber: c.Details.CaseNumber,
			LawyerID:   lawyer.ID,
			Content:    strings.TrimSpace(in.Message),
			CreatedAt:  a.now(),
		},
	}
	if err := a.store.CoverLetters.Insert(ctx, cl); err != nil {
		return internal("Failed to submit CV", err, "caseId", c.ID, "lawyerId", lawyer.ID)
	}
	return models.Ok("CV submitted successfully", cl)
}

// ListCoverLetters returns every application to a case
func (a *Actions) ListCoverLetters(ctx context.Context, s *session.Session, caseID string) models.ActionResult {
	if res, ok := authorize(s, models.RoleAdmin); !ok {
		return res
	}
	c, res, ok := a.findCase(ctx, ByID(caseID))
	if !ok {
		return res
	}
	letters, err := a.store.CoverLetters.FindByCase(ctx, c.ID)
	if err != nil {
		return internal("Failed to load cover letters", err, "caseId", c.ID)
	}
	if letters == nil {
		letters = []models.CoverLetter{}
	}
	return models.Ok("Cover letters loaded", letters)
}
