package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

const notificationColumns = `id, recipient_id, recipient_role, subject, message, case_id, read, read_at,
		email_case_number, email_date, email_time, email_location, email_cta_url, email_cta_text,
		email_status, email_attempts, created_at, updated_at`

type notificationRepository struct {
	db *sql.DB
}

func (r *notificationRepository) Insert(ctx context.Context, n *models.Notification) error {
	d := n.Details
	e := d.Email
	var emailDate sql.NullTime
	if !e.Date.IsZero() {
		emailDate = sql.NullTime{Time: e.Date, Valid: true}
	}
	_, err := conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO notifications (`+notificationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		n.ID, d.RecipientID, string(d.RecipientRole), d.Subject, d.Message, nullString(d.CaseID),
		d.Read, nullTime(d.ReadAt), e.CaseNumber, emailDate, e.Time, e.Location, e.CTAURL, e.CTAText,
		string(d.EmailStatus), d.EmailAttempts, d.CreatedAt, d.UpdatedAt)
	return translate("insert notification", err)
}

func (r *notificationRepository) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
	return scanNotification(row)
}

// MarkRead only stamps read_at the first time; repeating the call succeeds as long
// as the notification exists.
func (r *notificationRepository) MarkRead(ctx context.Context, id string, at time.Time) error {
	var found bool
	err := conn(ctx, r.db).QueryRowContext(ctx,
		`WITH upd AS (
		   UPDATE notifications SET read = TRUE, read_at = $2, updated_at = $2
		   WHERE id = $1 AND read = FALSE
		   RETURNING id
		 )
		 SELECT EXISTS (SELECT 1 FROM upd) OR EXISTS (SELECT 1 FROM notifications WHERE id = $1)`,
		id, at).Scan(&found)
	if err != nil {
		return translate("mark notification read", err)
	}
	if !found {
		return fmt.Errorf("mark notification read: %w", databases.ErrNotFound)
	}
	return nil
}

func (r *notificationRepository) FindByRecipient(ctx context.Context, recipientID string, limit int64) ([]models.Notification, error) {
	w := &where{}
	w.add("recipient_id = ?", recipientID)
	query := `SELECT ` + notificationColumns + ` FROM notifications` + w.String() + ` ORDER BY created_at DESC` + w.page(limit, 1)
	return r.find(ctx, query, w.args...)
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var n int64
	err := conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND read = FALSE`, recipientID).Scan(&n)
	if err != nil {
		return 0, translate("count unread notifications", err)
	}
	return n, nil
}

func (r *notificationRepository) UpdateEmailStatus(ctx context.Context, id string, status models.EmailStatus, attempts int, at time.Time) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		`UPDATE notifications SET email_status = $2, email_attempts = $3, updated_at = $4 WHERE id = $1`,
		id, string(status), attempts, at)
	if err != nil {
		return translate("update email status", err)
	}
	return expectRow("update email status", res)
}

func (r *notificationRepository) FindEmailRetries(ctx context.Context, maxAttempts int, staleBefore time.Time, limit int64) ([]models.Notification, error) {
	w := &where{}
	w.add("email_attempts < ?", maxAttempts)
	w.add("(email_status = ? OR (email_status = ? AND updated_at < ?))",
		string(models.EmailFailed), string(models.EmailPending), staleBefore)
	query := `SELECT ` + notificationColumns + ` FROM notifications` + w.String() + ` ORDER BY created_at ASC` + w.page(limit, 1)
	return r.find(ctx, query, w.args...)
}

func (r *notificationRepository) find(ctx context.Context, query string, args ...any) ([]models.Notification, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate("find notifications", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("find notifications", err)
	}
	return notifications, nil
}

func scanNotification(s scanner) (*models.Notification, error) {
	var (
		n         models.Notification
		role      string
		caseID    sql.NullString
		readAt    sql.NullTime
		emailDate sql.NullTime
		status    string
	)
	d := &n.Details
	e := &d.Email
	err := s.Scan(&n.ID, &d.RecipientID, &role, &d.Subject, &d.Message, &caseID, &d.Read, &readAt,
		&e.CaseNumber, &emailDate, &e.Time, &e.Location, &e.CTAURL, &e.CTAText,
		&status, &d.EmailAttempts, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, translate("find notification", err)
	}
	d.RecipientRole = models.Role(role)
	d.CaseID = caseID.String
	d.ReadAt = timePtr(readAt)
	if emailDate.Valid {
		e.Date = emailDate.Time
	}
	d.EmailStatus = models.EmailStatus(status)
	return &n, nil
}
