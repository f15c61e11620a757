package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/legalaid-ng/legalaid-api/api/credentials"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

func withPassword(t *testing.T, a *models.Account, password string) *models.Account {
	hash, err := credentials.Hash(password)
	require.NoError(t, err)
	a.Details.Password = hash
	return a
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("FindByEmail", mock.Anything, "ngozi@example.com").Return(withPassword(t, lawyerAccount(), "correct-horse"), nil)

	res, s := f.actions.Login(context.Background(), Credentials{Email: " NGOZI@example.com", Password: "correct-horse"})

	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Sign in successfully", res.Message)
	assert.Equal(t, SignedIn{ID: "lawyer-1", Role: models.RoleLawyer, Redirect: "/dashboard"}, res.Data)
	require.NotNil(t, s)
	assert.Equal(t, "lawyer-1", s.AccountID)
	assert.Equal(t, "Ngozi Okafor", s.Name)
}

func TestLogin_FailuresLookAlike(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("FindByEmail", mock.Anything, "ada@example.com").Return(withPassword(t, userAccount(), "correct-horse"), nil)
	f.accounts.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, databases.ErrNotFound)

	wrong, s1 := f.actions.Login(context.Background(), Credentials{Email: "ada@example.com", Password: "wrong-horse"})
	unknown, s2 := f.actions.Login(context.Background(), Credentials{Email: "ghost@example.com", Password: "wrong-horse"})

	assert.Nil(t, s1)
	assert.Nil(t, s2)
	assert.Equal(t, wrong, unknown)
	assert.Equal(t, "Invalid email or password", wrong.Message)
	assert.Equal(t, models.KindUnauthorized, wrong.Kind)
}

func TestLogin_RoleRestricted(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("FindByEmail", mock.Anything, "ada@example.com").Return(withPassword(t, userAccount(), "correct-horse"), nil)

	res, s := f.actions.Login(context.Background(), Credentials{Email: "ada@example.com", Password: "correct-horse"}, models.RoleAdmin)
	assert.False(t, res.Success)
	assert.Nil(t, s)
	assert.Equal(t, "Invalid email or password", res.Message)
}

func TestLogin_MissingFields(t *testing.T) {
	f := newFixture(t)
	res, s := f.actions.Login(context.Background(), Credentials{Email: "ada@example.com"})
	assert.Nil(t, s)
	assert.Equal(t, models.KindValidation, res.Kind)
}

func TestSignUp(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, databases.ErrNotFound)
	f.accounts.On("Insert", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
		return a.Details.Email == "ada@example.com" &&
			a.Details.Role == models.RoleUser &&
			a.Details.Name == "Ada Obi" &&
			a.Details.IsIndigent &&
			credentials.Verify(a.Details.Password, "correct-horse") == nil
	})).Return(nil).Once()

	res, s := f.actions.SignUp(context.Background(), UserSignUp{
		Email:      "Ada@Example.com",
		Password:   "correct-horse",
		FirstName:  "Ada",
		LastName:   "Obi",
		IsIndigent: true,
	})

	require.True(t, res.Success, res.Message)
	assert.Equal(t, "User created successfully", res.Message)
	require.NotNil(t, s)
	assert.Equal(t, "id-1", s.AccountID)
	assert.Equal(t, models.RoleUser, s.Role)
	f.accounts.AssertCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSignUp_Rejections(t *testing.T) {
	t.Run("email in use", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.On("FindByEmail", mock.Anything, "ngozi@example.com").Return(lawyerAccount(), nil)
		res, s := f.actions.SignUp(context.Background(), UserSignUp{Email: "ngozi@example.com", Password: "correct-horse"})
		assert.Nil(t, s)
		assert.Equal(t, "Email already in use", res.Message)
		assert.Equal(t, models.KindConflict, res.Kind)
	})

	t.Run("lost insert race", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, databases.ErrNotFound)
		f.accounts.On("Insert", mock.Anything, mock.Anything).Return(databases.ErrDuplicate)
		res, s := f.actions.SignUp(context.Background(), UserSignUp{Email: "ada@example.com", Password: "correct-horse"})
		assert.Nil(t, s)
		assert.Equal(t, "Email already in use", res.Message)
	})

	t.Run("short password", func(t *testing.T) {
		f := newFixture(t)
		res, s := f.actions.SignUp(context.Background(), UserSignUp{Email: "ada@example.com", Password: "short"})
		assert.Nil(t, s)
		assert.Equal(t, models.KindValidation, res.Kind)
	})
}

func TestRegisterLawyer(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("FindByEmail", mock.Anything, "tunde@example.com").Return(nil, databases.ErrNotFound)
	f.accounts.On("Insert", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
		return a.Details.Role == models.RoleLawyer &&
			a.Details.Lawyer != nil &&
			a.Details.Lawyer.CallToBarYear == 2012 &&
			a.Details.Lawyer.EnrollmentNumber == "SCN/0042"
	})).Return(nil).Once()

	res := f.actions.RegisterLawyer(context.Background(), LawyerSignUp{
		Email:            "tunde@example.com",
		Password:         "correct-horse",
		FullName:         "Tunde Bakare",
		EnrollmentNumber: "SCN/0042",
		CallToBarYear:    "2012",
		StateOfCall:      "Oyo",
	})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, SignedIn{ID: "id-1", Role: models.RoleLawyer}, res.Data)
}

func TestRegisterLawyer_Validation(t *testing.T) {
	base := LawyerSignUp{
		Email: "tunde@example.com", Password: "correct-horse", FullName: "Tunde Bakare",
		EnrollmentNumber: "SCN/0042", CallToBarYear: "2012", StateOfCall: "Oyo",
	}
	noBar := base
	noBar.EnrollmentNumber = ""
	badYear := base
	badYear.CallToBarYear = "twenty twelve"
	future := base
	future.CallToBarYear = "2099"

	for name, in := range map[string]LawyerSignUp{"no enrollment": noBar, "bad year": badYear, "future year": future} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			res := f.actions.RegisterLawyer(context.Background(), in)
			assert.False(t, res.Success)
			assert.Equal(t, models.KindValidation, res.Kind)
		})
	}
}

func TestCreateAdmin(t *testing.T) {
	f := newFixture(t)
	f.accounts.On("FindByEmail", mock.Anything, "root@example.com").Return(nil, databases.ErrNotFound)
	f.accounts.On("Insert", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
		return a.Details.Role == models.RoleAdmin && a.Details.Name == "Root"
	})).Return(nil).Once()

	res := f.actions.CreateAdmin(context.Background(), "root@example.com", "Root", "correct-horse")
	assert.True(t, res.Success, res.Message)
}
