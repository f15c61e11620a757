package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/legalaid-ng/legalaid-api/models"
)

const accountColumns = `a.id, a.email, a.password_hash, a.role, a.name, a.first_name, a.last_name,
		a.phone_number, a.address, a.city, a.state, a.zip_code, a.is_indigent,
		a.proof_of_indigency_url, a.created_at, a.updated_at,
		l.account_id, l.enrollment_number, l.call_to_bar_year, l.state_of_call, l.location,
		l.specialization, l.bio, l.avatar_url`

const accountFrom = ` FROM accounts a LEFT JOIN lawyer_profiles l ON l.account_id = a.id`

type accountRepository struct {
	db *sql.DB
	tx *transactor
}

func (r *accountRepository) Insert(ctx context.Context, account *models.Account) error {
	account.Details.Email = strings.ToLower(strings.TrimSpace(account.Details.Email))
	d := account.Details

	return r.tx.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := conn(ctx, r.db).ExecContext(ctx,
			`INSERT INTO accounts (id, email, password_hash, role, name, first_name, last_name,
			 phone_number, address, city, state, zip_code, is_indigent, proof_of_indigency_url,
			 created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
			account.ID, d.Email, d.Password, string(d.Role), d.Name, d.FirstName, d.LastName,
			d.PhoneNumber, d.Address, d.City, d.State, d.ZipCode, d.IsIndigent, d.ProofOfIndigencyURL,
			d.CreatedAt, d.UpdatedAt)
		if err != nil {
			return translate("insert account", err)
		}
		if d.Lawyer == nil {
			return nil
		}
		l := d.Lawyer
		_, err = conn(ctx, r.db).ExecContext(ctx,
			`INSERT INTO lawyer_profiles (account_id, enrollment_number, call_to_bar_year,
			 state_of_call, location, specialization, bio, avatar_url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			account.ID, l.EnrollmentNumber, l.CallToBarYear, l.StateOfCall, l.Location,
			l.Specialization, l.Bio, l.AvatarURL)
		return translate("insert lawyer profile", err)
	})
}

func (r *accountRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+accountColumns+accountFrom+` WHERE a.id = $1`, id)
	return scanAccount(row)
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+accountColumns+accountFrom+` WHERE a.email = $1`,
		strings.ToLower(strings.TrimSpace(email)))
	return scanAccount(row)
}

func (r *accountRepository) FindByRole(ctx context.Context, role models.Role, limit int64) ([]models.Account, error) {
	w := &where{}
	w.add("a.role = ?", string(role))
	query := `SELECT ` + accountColumns + accountFrom + w.String() + ` ORDER BY a.created_at DESC` + w.page(limit, 1)

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, translate("find accounts", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("find accounts", err)
	}
	return accounts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*models.Account, error) {
	var (
		a        models.Account
		role     string
		lawyerID sql.NullString
		enroll   sql.NullString
		year     sql.NullInt64
		state    sql.NullString
		location sql.NullString
		spec     sql.NullString
		bio      sql.NullString
		avatar   sql.NullString
	)
	d := &a.Details
	err := s.Scan(&a.ID, &d.Email, &d.Password, &role, &d.Name, &d.FirstName, &d.LastName,
		&d.PhoneNumber, &d.Address, &d.City, &d.State, &d.ZipCode, &d.IsIndigent,
		&d.ProofOfIndigencyURL, &d.CreatedAt, &d.UpdatedAt,
		&lawyerID, &enroll, &year, &state, &location, &spec, &bio, &avatar)
	if err != nil {
		return nil, translate("find account", err)
	}
	d.Role = models.Role(role)
	if lawyerID.Valid {
		d.Lawyer = &models.LawyerProfile{
			EnrollmentNumber: enroll.String,
			CallToBarYear:    int(year.Int64),
			StateOfCall:      state.String,
			Location:         location.String,
			Specialization:   spec.String,
			Bio:              bio.String,
			AvatarURL:        avatar.String,
		}
	}
	return &a, nil
}
