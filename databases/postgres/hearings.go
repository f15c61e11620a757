package postgres

import (
	"context"
	"database/sql"

	"github.com/legalaid-ng/legalaid-api/models"
)

const hearingColumns = `id, case_id, case_number, hearing_date, hearing_time, location, type, created_by, created_at`

type hearingRepository struct {
	db *sql.DB
}

func (r *hearingRepository) Insert(ctx context.Context, h *models.CourtHearing) error {
	d := h.Details
	_, err := conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO hearings (`+hearingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		h.ID, d.CaseID, d.CaseNumber, d.Date, d.Time, d.Location, d.Type, d.CreatedBy, d.CreatedAt)
	return translate("insert hearing", err)
}

func (r *hearingRepository) Find(ctx context.Context, filter models.HearingFilter) ([]models.CourtHearing, error) {
	if filter.CaseIDs != nil && len(filter.CaseIDs) == 0 {
		return nil, nil
	}
	w := &where{}
	if filter.CaseIDs != nil {
		w.in("case_id", filter.CaseIDs)
	}
	if !filter.From.IsZero() {
		w.add("hearing_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		w.add("hearing_date <= ?", filter.To)
	}
	query := `SELECT ` + hearingColumns + ` FROM hearings` + w.String() + ` ORDER BY hearing_date ASC` + w.page(filter.Limit, 1)

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, translate("find hearings", err)
	}
	defer rows.Close()

	var hearings []models.CourtHearing
	for rows.Next() {
		var h models.CourtHearing
		d := &h.Details
		if err := rows.Scan(&h.ID, &d.CaseID, &d.CaseNumber, &d.Date, &d.Time, &d.Location, &d.Type,
			&d.CreatedBy, &d.CreatedAt); err != nil {
			return nil, translate("find hearings", err)
		}
		hearings = append(hearings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("find hearings", err)
	}
	return hearings, nil
}
