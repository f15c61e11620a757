package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

// AssignLawyer puts a lawyer on a case and notifies both the lawyer and the case owner.
// Reassigning an assigned case is allowed and the last call wins.
func (a *Actions) AssignLawyer(ctx context.Context, s *session.Session, caseID, lawyerID string) models.ActionResult {
	if res, ok := authorize(s, models.RoleAdmin); !ok {
		return res
	}
	if !required(caseID, lawyerID) {
		return models.Fail(models.KindValidation, "Case and lawyer are required")
	}

	lawyer, err := a.store.Accounts.FindByID(ctx, lawyerID)
	if errors.Is(err, databases.ErrNotFound) || (err == nil && lawyer.Details.Role != models.RoleLawyer) {
		return models.Fail(models.KindNotFound, "Lawyer not found")
	}
	if err != nil {
		return internal("Failed to assign lawyer", err, "lawyerId", lawyerID)
	}

	c, res, ok := a.findCase(ctx, ByID(caseID))
	if !ok {
		return res
	}
	if c.Details.Status == models.CaseStatusClosed {
		return models.Fail(models.KindConflict, "Closed cases cannot be reassigned")
	}
	owner, err := a.store.Accounts.FindByID(ctx, c.Details.UserID)
	if err != nil {
		return internal("Failed to assign lawyer", err, "caseId", c.ID)
	}

	number := c.Details.CaseNumber
	toLawyer := a.notification(*lawyer, "New case assigned",
		fmt.Sprintf("You have been assigned to case %s: %s.", number, c.Details.Title),
		c.ID, models.EmailEnvelope{CaseNumber: number, CTAURL: a.dashboardURL(), CTAText: "View case"})
	toOwner := a.notification(*owner, "Lawyer assigned",
		fmt.Sprintf("%s has been assigned to your case %s.", lawyer.DisplayName(), number),
		c.ID, models.EmailEnvelope{CaseNumber: number, CTAURL: a.dashboardURL(), CTAText: "View case"})

	now := a.now()
	err = a.store.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := a.store.Cases.Assign(ctx, c.ID, lawyer.ID, now); err != nil {
			return err
		}
		if err := a.store.Notifications.Insert(ctx, &toLawyer); err != nil {
			return err
		}
		return a.store.Notifications.Insert(ctx, &toOwner)
	})
	if err != nil {
		return internal("Failed to assign lawyer", err, "caseId", c.ID, "lawyerId", lawyer.ID)
	}

	a.deliver(outbound{n: toLawyer, to: *lawyer}, outbound{n: toOwner, to: *owner})

	c.Details.LawyerID = lawyer.ID
	c.Details.Status = models.CaseStatusAssigned
	c.Details.AssignedAt = &now
	c.Details.UpdatedAt = now
	return models.Ok("Lawyer assigned successfully", c)
}
