package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/legalaid-ng/legalaid-api/models"
)

const caseColumns = `id, case_number, title, description, case_type, status, user_id, lawyer_id,
		created_at, updated_at, assigned_at, closed_at`

type caseRepository struct {
	db *sql.DB
}

func (r *caseRepository) Insert(ctx context.Context, c *models.Case) error {
	d := c.Details
	_, err := conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO cases (`+caseColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, d.CaseNumber, d.Title, d.Description, d.CaseType, string(d.Status), d.UserID,
		nullString(d.LawyerID), d.CreatedAt, d.UpdatedAt, nullTime(d.AssignedAt), nullTime(d.ClosedAt))
	return translate("insert case", err)
}

func (r *caseRepository) FindByID(ctx context.Context, id string) (*models.Case, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+caseColumns+` FROM cases WHERE id = $1`, id)
	return scanCase(row)
}

func (r *caseRepository) FindByNumber(ctx context.Context, caseNumber string) (*models.Case, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+caseColumns+` FROM cases WHERE case_number = $1`, caseNumber)
	return scanCase(row)
}

func (r *caseRepository) Assign(ctx context.Context, caseID, lawyerID string, at time.Time) error {
	res, err := conn(ctx, r.db).ExecContext(ctx,
		`UPDATE cases SET lawyer_id = $2, status = $3, assigned_at = $4, updated_at = $4
		 WHERE id = $1`,
		caseID, lawyerID, string(models.CaseStatusAssigned), at)
	if err != nil {
		return translate("assign case", err)
	}
	return expectRow("assign case", res)
}

func (r *caseRepository) UpdateStatus(ctx context.Context, caseID string, status models.CaseStatus, at time.Time) error {
	query := `UPDATE cases SET status = $2, updated_at = $3 WHERE id = $1`
	if status == models.CaseStatusClosed {
		query = `UPDATE cases SET status = $2, updated_at = $3, closed_at = $3 WHERE id = $1`
	}
	res, err := conn(ctx, r.db).ExecContext(ctx, query, caseID, string(status), at)
	if err != nil {
		return translate("update case status", err)
	}
	return expectRow("update case status", res)
}

func (r *caseRepository) Find(ctx context.Context, filter models.CaseFilter) ([]models.Case, error) {
	w := caseWhere(filter)
	query := `SELECT ` + caseColumns + ` FROM cases` + w.String() + ` ORDER BY created_at DESC` + w.page(filter.Limit, filter.Page)

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, translate("find cases", err)
	}
	defer rows.Close()

	var cases []models.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("find cases", err)
	}
	return cases, nil
}

func (r *caseRepository) Count(ctx context.Context, filter models.CaseFilter) (int64, error) {
	w := caseWhere(filter)
	var n int64
	err := conn(ctx, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM cases`+w.String(), w.args...).Scan(&n)
	if err != nil {
		return 0, translate("count cases", err)
	}
	return n, nil
}

func caseWhere(filter models.CaseFilter) *where {
	w := &where{}
	if filter.UserID != "" {
		w.add("user_id = ?", filter.UserID)
	}
	if filter.LawyerID != "" {
		w.add("lawyer_id = ?", filter.LawyerID)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		w.in("status", statuses)
	}
	return w
}

func scanCase(s scanner) (*models.Case, error) {
	var (
		c          models.Case
		status     string
		lawyerID   sql.NullString
		assignedAt sql.NullTime
		closedAt   sql.NullTime
	)
	d := &c.Details
	err := s.Scan(&c.ID, &d.CaseNumber, &d.Title, &d.Description, &d.CaseType, &status, &d.UserID,
		&lawyerID, &d.CreatedAt, &d.UpdatedAt, &assignedAt, &closedAt)
	if err != nil {
		return nil, translate("find case", err)
	}
	d.Status = models.CaseStatus(status)
	d.LawyerID = lawyerID.String
	d.AssignedAt = timePtr(assignedAt)
	d.ClosedAt = timePtr(closedAt)
	return &c, nil
}
