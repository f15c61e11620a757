package actions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/databases/mocks"
	"github.com/legalaid-ng/legalaid-api/models"
)

var fixedNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

type delivered struct {
	n  models.Notification
	to models.Account
}

type recordingDeliverer struct {
	sent []delivered
}

func (r *recordingDeliverer) Deliver(n models.Notification, to models.Account) {
	r.sent = append(r.sent, delivered{n: n, to: to})
}

type recordingPusher struct {
	pushed map[string][]models.Notification
}

func (r *recordingPusher) Push(accountID string, n models.Notification) {
	if r.pushed == nil {
		r.pushed = map[string][]models.Notification{}
	}
	r.pushed[accountID] = append(r.pushed[accountID], n)
}

type fixture struct {
	accounts      *mocks.AccountDatabase
	cases         *mocks.CaseDatabase
	hearings      *mocks.HearingDatabase
	coverLetters  *mocks.CoverLetterDatabase
	notifications *mocks.NotificationDatabase
	tx            *mocks.Transactor
	mail          *recordingDeliverer
	push          *recordingPusher
	actions       *Actions
}

func runTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		accounts:      mocks.NewAccountDatabase(t),
		cases:         mocks.NewCaseDatabase(t),
		hearings:      mocks.NewHearingDatabase(t),
		coverLetters:  mocks.NewCoverLetterDatabase(t),
		notifications: mocks.NewNotificationDatabase(t),
		tx:            &mocks.Transactor{},
		mail:          &recordingDeliverer{},
		push:          &recordingPusher{},
	}
	f.tx.On("WithTransaction", mock.Anything, mock.Anything).Return(runTx).Maybe()

	store := &databases.Store{
		Accounts:      f.accounts,
		Cases:         f.cases,
		Hearings:      f.hearings,
		CoverLetters:  f.coverLetters,
		Notifications: f.notifications,
		Tx:            f.tx,
	}
	f.actions = New(store, f.mail, f.push, "https://app.legalaid.ng/")
	f.actions.now = func() time.Time { return fixedNow }
	seq := 0
	f.actions.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	f.actions.caseToken = func() string { return "1A2B3C4D" }
	return f
}

func userSession() *session.Session {
	return &session.Session{AccountID: "user-1", Email: "ada@example.com", Name: "Ada Obi", Role: models.RoleUser}
}

func lawyerSession() *session.Session {
	return &session.Session{AccountID: "lawyer-1", Email: "ngozi@example.com", Name: "Ngozi Okafor", Role: models.RoleLawyer}
}

func adminSession() *session.Session {
	return &session.Session{AccountID: "admin-1", Email: "admin@example.com", Name: "Admin", Role: models.RoleAdmin}
}

func userAccount() *models.Account {
	return &models.Account{ID: "user-1", Details: models.AccountDetails{
		Email: "ada@example.com", Role: models.RoleUser, FirstName: "Ada", LastName: "Obi",
	}}
}

func lawyerAccount() *models.Account {
	return &models.Account{ID: "lawyer-1", Details: models.AccountDetails{
		Email: "ngozi@example.com", Role: models.RoleLawyer, Name: "Ngozi Okafor",
		Lawyer: &models.LawyerProfile{EnrollmentNumber: "SCN/1234", CallToBarYear: 2015, StateOfCall: "Lagos"},
	}}
}

func openCase() *models.Case {
	return &models.Case{ID: "case-1", Details: models.CaseDetails{
		CaseNumber: "HO-1A2B3C4D", Title: "Eviction Help", CaseType: "Housing",
		Status: models.CaseStatusOpen, UserID: "user-1",
	}}
}

func assignedCase() *models.Case {
	c := openCase()
	c.Details.Status = models.CaseStatusAssigned
	c.Details.LawyerID = "lawyer-1"
	return c
}
