package postgres

import (
	"context"
	"database/sql"

	"github.com/legalaid-ng/legalaid-api/models"
)

type coverLetterRepository struct {
	db *sql.DB
}

func (r *coverLetterRepository) Insert(ctx context.Context, cl *models.CoverLetter) error {
	d := cl.Details
	_, err := conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO cover_letters (id, case_id, case_number, lawyer_id, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		cl.ID, d.CaseID, d.CaseNumber, d.LawyerID, d.Content, d.CreatedAt)
	return translate("insert cover letter", err)
}

func (r *coverLetterRepository) FindByCase(ctx context.Context, caseID string) ([]models.CoverLetter, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx,
		`SELECT id, case_id, case_number, lawyer_id, content, created_at
		 FROM cover_letters WHERE case_id = $1 ORDER BY created_at ASC`, caseID)
	if err != nil {
		return nil, translate("find cover letters", err)
	}
	defer rows.Close()

	var letters []models.CoverLetter
	for rows.Next() {
		var cl models.CoverLetter
		d := &cl.Details
		if err := rows.Scan(&cl.ID, &d.CaseID, &d.CaseNumber, &d.LawyerID, &d.Content, &d.CreatedAt); err != nil {
			return nil, translate("find cover letters", err)
		}
		letters = append(letters, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("find cover letters", err)
	}
	return letters, nil
}
