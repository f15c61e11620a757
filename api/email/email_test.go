package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/legalaid-ng/legalaid-api/databases/mocks"
	"github.com/legalaid-ng/legalaid-api/models"
)

type fakeSender struct {
	sent    []Email
	err     error
	panics  bool
	receipt Receipt
}

func (f *fakeSender) Send(ctx context.Context, e Email) (Receipt, error) {
	if f.panics {
		panic("provider exploded")
	}
	f.sent = append(f.sent, e)
	return f.receipt, f.err
}

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestDispatcher(s Sender) *Dispatcher {
	d := NewDispatcher(s, "support@legalaid.ng")
	d.now = func() time.Time { return fixedNow }
	return d
}

func TestDispatcher_Send(t *testing.T) {
	sender := &fakeSender{receipt: Receipt{StatusCode: 202, MessageID: "msg-1"}}
	d := newTestDispatcher(sender)

	result := d.Send(context.Background(), Message{
		To:            " ada@example.com ",
		RecipientName: "Ada",
		Subject:       "Court hearing scheduled",
		Body:          "A hearing has been scheduled for your case.",
		CaseNumber:    "HO-1A2B3C4D",
		Date:          time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Time:          "10:00",
		Location:      "High Court, Ikeja",
		CTAURL:        "https://app.legalaid.ng/dashboard",
	})

	require.True(t, result.Success)
	assert.Equal(t, "Email sent successfully", result.Message)
	assert.Equal(t, Receipt{StatusCode: 202, MessageID: "msg-1"}, result.Data)

	require.Len(t, sender.sent, 1)
	e := sender.sent[0]
	assert.Equal(t, "ada@example.com", e.ToAddress)
	assert.Equal(t, "Court hearing scheduled", e.Subject)
	assert.Contains(t, e.HTML, "Monday, March 4, 2024")
	assert.Contains(t, e.HTML, "support@legalaid.ng")
	assert.Contains(t, e.PlainText, "Date: Monday, March 4, 2024")
}

func TestDispatcher_SendFailures(t *testing.T) {
	tests := []struct {
		name    string
		sender  Sender
		msg     Message
		message string
		kind    models.ResultKind
	}{
		{name: "not configured", sender: nil, msg: Message{To: "a@b.com"}, message: "Email is not configured", kind: models.KindInternal},
		{name: "missing recipient", sender: &fakeSender{}, msg: Message{To: "  "}, message: "Recipient email is required", kind: models.KindValidation},
		{name: "provider error", sender: &fakeSender{err: errors.New("sendgrid error: status 401")}, msg: Message{To: "a@b.com"}, message: "Failed to send email", kind: models.KindInternal},
		{name: "provider panic", sender: &fakeSender{panics: true}, msg: Message{To: "a@b.com"}, message: "Failed to send email", kind: models.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestDispatcher(tt.sender).Send(context.Background(), tt.msg)
			assert.False(t, result.Success)
			assert.Equal(t, tt.message, result.Message)
			assert.Equal(t, tt.kind, result.Kind)
		})
	}
}

func TestNotifier_DeliverNow(t *testing.T) {
	notification := models.Notification{
		ID: "n-1",
		Details: models.NotificationDetails{
			Subject:       "Lawyer assigned",
			Message:       "You have been assigned a case.",
			EmailAttempts: 1,
			Email:         models.EmailEnvelope{CaseNumber: "HO-1A2B3C4D"},
		},
	}
	recipient := models.Account{ID: "lawyer-1", Details: models.AccountDetails{Email: "ngozi@example.com", Name: "Ngozi"}}

	t.Run("sent", func(t *testing.T) {
		sender := &fakeSender{receipt: Receipt{StatusCode: 202}}
		notifications := mocks.NewNotificationDatabase(t)
		notifications.On("UpdateEmailStatus", mock.Anything, "n-1", models.EmailSent, 2, fixedNow).Return(nil)

		nt := NewNotifier(newTestDispatcher(sender), notifications)
		nt.now = func() time.Time { return fixedNow }

		result := nt.DeliverNow(context.Background(), notification, recipient)
		assert.True(t, result.Success)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "Ngozi", sender.sent[0].ToName)
	})

	t.Run("failed", func(t *testing.T) {
		notifications := mocks.NewNotificationDatabase(t)
		notifications.On("UpdateEmailStatus", mock.Anything, "n-1", models.EmailFailed, 2, fixedNow).Return(nil)

		nt := NewNotifier(newTestDispatcher(&fakeSender{err: errors.New("down")}), notifications)
		nt.now = func() time.Time { return fixedNow }

		result := nt.DeliverNow(context.Background(), notification, recipient)
		assert.False(t, result.Success)
	})

	t.Run("skipped without provider", func(t *testing.T) {
		notifications := mocks.NewNotificationDatabase(t)
		notifications.On("UpdateEmailStatus", mock.Anything, "n-1", models.EmailSkipped, 1, fixedNow).Return(nil)

		nt := NewNotifier(newTestDispatcher(nil), notifications)
		nt.now = func() time.Time { return fixedNow }

		result := nt.DeliverNow(context.Background(), notification, recipient)
		assert.False(t, result.Success)
	})
}

func TestNotifier_DeliverInBackground(t *testing.T) {
	sender := &fakeSender{receipt: Receipt{StatusCode: 202}}
	notifications := mocks.NewNotificationDatabase(t)
	notifications.On("UpdateEmailStatus", mock.Anything, "n-1", models.EmailSent, 1, mock.Anything).Return(errors.New("db down"))

	nt := NewNotifier(newTestDispatcher(sender), notifications)
	nt.Deliver(models.Notification{ID: "n-1"}, models.Account{Details: models.AccountDetails{Email: "a@b.com"}})
	nt.Wait()

	assert.Len(t, sender.sent, 1)
}
