package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/legalaid-ng/legalaid-api/models"
)

func TestSendHearingReminders(t *testing.T) {
	f := newFixture(t)
	day := time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC)
	from := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	unassigned := openCase()
	unassigned.ID = "case-2"
	hearings := []models.CourtHearing{
		{ID: "h-1", Details: models.HearingDetails{CaseID: "case-1", CaseNumber: "HO-1A2B3C4D", Date: from, Time: "9:00 AM", Location: "Court 3"}},
		{ID: "h-2", Details: models.HearingDetails{CaseID: "case-2", CaseNumber: "HO-1A2B3C4D", Date: from, Time: "1:00 PM", Location: "Court 1"}},
		{ID: "h-3", Details: models.HearingDetails{CaseID: "case-3"}},
	}
	f.hearings.On("Find", mock.Anything, models.HearingFilter{From: from, To: from.Add(24*time.Hour - time.Nanosecond)}).Return(hearings, nil)
	f.cases.On("FindByID", mock.Anything, "case-1").Return(assignedCase(), nil)
	f.cases.On("FindByID", mock.Anything, "case-2").Return(unassigned, nil)
	f.cases.On("FindByID", mock.Anything, "case-3").Return(nil, errors.New("mocked-error"))
	f.accounts.On("FindByID", mock.Anything, "user-1").Return(userAccount(), nil)
	f.accounts.On("FindByID", mock.Anything, "lawyer-1").Return(lawyerAccount(), nil)
	f.notifications.On("Insert", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
		return n.Details.Subject == "Court hearing reminder"
	})).Return(nil).Times(3)

	sent, err := f.actions.SendHearingReminders(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	require.Len(t, f.mail.sent, 3)
	assert.Equal(t, "user-1", f.mail.sent[0].to.ID)
	assert.Equal(t, "lawyer-1", f.mail.sent[1].to.ID)
	assert.Equal(t, "Reminder: the hearing for case HO-1A2B3C4D is on March 3, 2026 at 9:00 AM, Court 3.", f.mail.sent[0].n.Details.Message)
}

func TestSendHearingReminders_FindError(t *testing.T) {
	f := newFixture(t)
	f.hearings.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))

	_, err := f.actions.SendHearingReminders(context.Background(), time.Now())
	assert.EqualError(t, err, "find hearings: mocked-error")
}
