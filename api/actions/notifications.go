package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

// DefaultNotificationLimit caps ListNotifications when no limit is given
const DefaultNotificationLimit = 20

// NewNotification is the input of CreateNotification. RecipientType must be "user" or
// "lawyer".
type NewNotification struct {
	RecipientType string `json:"recipientType"`
	RecipientID   string `json:"recipientId"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	CaseID        string `json:"caseId"`
}

// NotificationList is returned by ListNotifications
type NotificationList struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int64                 `json:"unread"`
}

// CreateNotification stores an ad-hoc notice for one litigant or lawyer and emails it
// on a best-effort basis
func (a *Actions) CreateNotification(ctx context.Context, s *session.Session, in NewNotification) models.ActionResult {
	if res, ok := authorize(s, models.RoleAdmin); !ok {
		return res
	}
	role := models.Role(strings.ToLower(strings.TrimSpace(in.RecipientType)))
	if role != models.RoleUser && role != models.RoleLawyer {
		return models.Fail(models.KindValidation, "Invalid recipient type")
	}
	if !required(in.RecipientID, in.Message) {
		return models.Fail(models.KindValidation, "Recipient and message are required")
	}

	recipient, err := a.store.Accounts.FindByID(ctx, strings.TrimSpace(in.RecipientID))
	if errors.Is(err, databases.ErrNotFound) || (err == nil && recipient.Details.Role != role) {
		return models.Fail(models.KindNotFound, "Recipient not found")
	}
	if err != nil {
		return internal("Failed to create notification", err, "recipientId", in.RecipientID)
	}

	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		subject = "New notification"
	}
	n := a.notification(*recipient, subject, strings.TrimSpace(in.Message), strings.TrimSpace(in.CaseID),
		models.EmailEnvelope{CTAURL: a.dashboardURL()})
	if err := a.store.Notifications.Insert(ctx, &n); err != nil {
		return internal("Failed to create notification", err, "recipientId", recipient.ID)
	}

	a.deliver(outbound{n: n, to: *recipient})
	return models.Ok("Notification created successfully", n)
}

// MarkNotificationRead flips the read flag. Repeating the call succeeds.
func (a *Actions) MarkNotificationRead(ctx context.Context, s *session.Session, id string) models.ActionResult {
	if res, ok := authorize(s); !ok {
		return res
	}
	if !required(id) {
		return models.Fail(models.KindValidation, "Notification is required")
	}

	n, err := a.store.Notifications.FindByID(ctx, id)
	if errors.Is(err, databases.ErrNotFound) {
		return models.Fail(models.KindNotFound, "Notification not found")
	}
	if err != nil {
		return internal("Failed to mark notification as read", err, "notificationId", id)
	}
	if n.Details.RecipientID != s.AccountID && !s.Is(models.RoleAdmin) {
		return models.Fail(models.KindForbidden, "You are not allowed to do this")
	}

	err = a.store.Notifications.MarkRead(ctx, id, a.now())
	if errors.Is(err, databases.ErrNotFound) {
		return models.Fail(models.KindNotFound, "Notification not found")
	}
	if err != nil {
		return internal("Failed to mark notification as read", err, "notificationId", id)
	}
	return models.Ok("Notification marked as read", nil)
}

// ListNotifications returns the caller's latest notifications and unread count
func (a *Actions) ListNotifications(ctx context.Context, s *session.Session, limit int64) models.ActionResult {
	if res, ok := authorize(s); !ok {
		return res
	}
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}

	notifications, err := a.store.Notifications.FindByRecipient(ctx, s.AccountID, limit)
	if err != nil {
		return internal("Failed to load notifications", err, "accountId", s.AccountID)
	}
	unread, err := a.store.Notifications.CountUnread(ctx, s.AccountID)
	if err != nil {
		return internal("Failed to load notifications", err, "accountId", s.AccountID)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return models.Ok("Notifications loaded", NotificationList{Notifications: notifications, Unread: unread})
}
