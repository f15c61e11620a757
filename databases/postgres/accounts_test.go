package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

var accountRowColumns = []string{
	"id", "email", "password_hash", "role", "name", "first_name", "last_name",
	"phone_number", "address", "city", "state", "zip_code", "is_indigent",
	"proof_of_indigency_url", "created_at", "updated_at",
	"account_id", "enrollment_number", "call_to_bar_year", "state_of_call", "location",
	"specialization", "bio", "avatar_url",
}

func TestAccountRepository_InsertLawyer(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO accounts`).
		WithArgs("acc-1", "ngozi@example.com", "hash", "lawyer", "Ngozi Okafor", "", "",
			"", "", "", "", "", false, "", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO lawyer_profiles`).
		WithArgs("acc-1", "SCN123", 2015, "Lagos", "Ikeja", "Criminal", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewStore(db).Accounts
	err := repo.Insert(context.Background(), &models.Account{
		ID: "acc-1",
		Details: models.AccountDetails{
			Email:    "Ngozi@Example.com",
			Password: "hash",
			Role:     models.RoleLawyer,
			Name:     "Ngozi Okafor",
			Lawyer: &models.LawyerProfile{
				EnrollmentNumber: "SCN123",
				CallToBarYear:    2015,
				StateOfCall:      "Lagos",
				Location:         "Ikeja",
				Specialization:   "Criminal",
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	assert.NoError(t, err)
}

func TestAccountRepository_InsertDuplicateEmail(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO accounts`).WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := NewStore(db).Accounts.Insert(context.Background(), &models.Account{
		ID:      "acc-2",
		Details: models.AccountDetails{Email: "taken@example.com", Role: models.RoleUser},
	})
	assert.ErrorIs(t, err, databases.ErrDuplicate)
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(accountRowColumns).AddRow(
		"acc-1", "ngozi@example.com", "hash", "lawyer", "Ngozi Okafor", "", "",
		"", "", "", "", "", false, "", now, now,
		"acc-1", "SCN123", int64(2015), "Lagos", "Ikeja", "Criminal", "", "")
	mock.ExpectQuery(`FROM accounts a LEFT JOIN lawyer_profiles l ON l.account_id = a.id WHERE a.email = \$1`).
		WithArgs("ngozi@example.com").
		WillReturnRows(rows)

	got, err := NewStore(db).Accounts.FindByEmail(context.Background(), " NGOZI@example.com")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", got.ID)
	assert.Equal(t, models.RoleLawyer, got.Details.Role)
	require.NotNil(t, got.Details.Lawyer)
	assert.Equal(t, 2015, got.Details.Lawyer.CallToBarYear)
	assert.Equal(t, "Ikeja", got.Details.Lawyer.Location)
}

func TestAccountRepository_FindByIDWithoutProfile(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(accountRowColumns).AddRow(
		"acc-9", "ada@example.com", "hash", "user", "", "Ada", "Eze",
		"", "", "", "", "", true, "", now, now,
		nil, nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery(`WHERE a.id = \$1`).WithArgs("acc-9").WillReturnRows(rows)

	got, err := NewStore(db).Accounts.FindByID(context.Background(), "acc-9")
	require.NoError(t, err)
	assert.Nil(t, got.Details.Lawyer)
	assert.True(t, got.Details.IsIndigent)
	assert.Equal(t, "Ada Eze", got.DisplayName())
}

func TestAccountRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`WHERE a.id = \$1`).WithArgs("ghost").WillReturnRows(sqlmock.NewRows(accountRowColumns))

	_, err := NewStore(db).Accounts.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestAccountRepository_FindByRole(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(accountRowColumns).
		AddRow("acc-1", "a@example.com", "h", "lawyer", "A", "", "", "", "", "", "", "", false, "", now, now,
			"acc-1", "", int64(0), "", "", "", "", "").
		AddRow("acc-2", "b@example.com", "h", "lawyer", "B", "", "", "", "", "", "", "", false, "", now, now,
			"acc-2", "", int64(0), "", "", "", "", "")
	mock.ExpectQuery(`WHERE a.role = \$1 ORDER BY a.created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs("lawyer", int64(20), int64(0)).
		WillReturnRows(rows)

	got, err := NewStore(db).Accounts.FindByRole(context.Background(), models.RoleLawyer, 20)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "B", got[1].Details.Name)
}
