package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/legalaid-ng/legalaid-api/api/credentials"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

func sessionCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (ta *testApp) withLitigant(t *testing.T) {
	hash, err := credentials.Hash("correct horse")
	require.NoError(t, err)
	ta.accounts.On("FindByEmail", mock.Anything, "ada@example.com").Return(&models.Account{
		ID:      "user-1",
		Details: models.AccountDetails{Email: "ada@example.com", Password: hash, Role: models.RoleUser, FirstName: "Ada", LastName: "Obi"},
	}, nil)
}

func TestLoginHandler_SetsSessionCookie(t *testing.T) {
	ta := newTestApp(t)
	ta.withLitigant(t)

	rr := ta.executeRequest(jsonRequest(http.MethodPost, "/app/login", `{"email":"Ada@Example.com","password":"correct horse"}`))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := decodeResult(t, rr)
	assert.Equal(t, "Sign in successfully", body["message"])
	assert.Equal(t, "/dashboard", body["data"].(map[string]interface{})["redirect"])

	c := sessionCookie(rr, ta.Config.SessionCookie)
	require.NotNil(t, c)
	s, err := ta.Sessions.Parse(c.Value)
	require.NoError(t, err)
	assert.Equal(t, "user-1", s.AccountID)
	assert.Equal(t, models.RoleUser, s.Role)
}

func TestLoginHandler_WrongSegment(t *testing.T) {
	ta := newTestApp(t)
	ta.withLitigant(t)

	rr := ta.executeRequest(jsonRequest(http.MethodPost, "/web/signin", `{"email":"ada@example.com","password":"correct horse"}`))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid email or password", decodeResult(t, rr)["message"])
	assert.Nil(t, sessionCookie(rr, ta.Config.SessionCookie))
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	ta := newTestApp(t)
	ta.withLitigant(t)

	rr := ta.executeRequest(jsonRequest(http.MethodPost, "/app/login", `{"email":"ada@example.com","password":"nope"}`))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Nil(t, sessionCookie(rr, ta.Config.SessionCookie))
}

func TestSignUpHandler(t *testing.T) {
	ta := newTestApp(t)
	ta.accounts.On("FindByEmail", mock.Anything, "chidi@example.com").Return(nil, databases.ErrNotFound)
	ta.accounts.On("Insert", mock.Anything, mock.AnythingOfType("*models.Account")).Return(nil)

	rr := ta.executeRequest(jsonRequest(http.MethodPost, "/app/signup",
		`{"email":"chidi@example.com","password":"longenough","firstName":"Chidi","lastName":"Eze","isIndigent":true}`))

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "User created successfully", decodeResult(t, rr)["message"])
	assert.NotNil(t, sessionCookie(rr, ta.Config.SessionCookie))
}

func TestSignUpHandler_EmailTaken(t *testing.T) {
	ta := newTestApp(t)
	ta.withLitigant(t)

	rr := ta.executeRequest(jsonRequest(http.MethodPost, "/app/signup",
		`{"email":"ada@example.com","password":"longenough","firstName":"Ada","lastName":"Obi"}`))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "Email already in use", decodeResult(t, rr)["message"])
	assert.Nil(t, sessionCookie(rr, ta.Config.SessionCookie))
}

func TestRegisterLawyerHandler_NoSession(t *testing.T) {
	ta := newTestApp(t)
	ta.accounts.On("FindByEmail", mock.Anything, "ngozi@example.com").Return(nil, databases.ErrNotFound)
	ta.accounts.On("Insert", mock.Anything, mock.MatchedBy(func(a *models.Account) bool {
		return a.Details.Role == models.RoleLawyer && a.Details.Lawyer != nil && a.Details.Lawyer.CallToBarYear == 2015
	})).Return(nil)

	rr := ta.executeRequest(jsonRequest(http.MethodPost, "/web/register",
		`{"email":"ngozi@example.com","password":"longenough","fullName":"Ngozi Okafor","nbaNumber":"SCN012345","callToBarYear":"2015","stateOfCall":"Lagos"}`))

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Nil(t, sessionCookie(rr, ta.Config.SessionCookie))
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	ta := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/web/logout", nil)
	ta.signIn(t, req, lawyerSession())
	rr := ta.executeRequest(req)

	require.Equal(t, http.StatusOK, rr.Code)
	c := sessionCookie(rr, ta.Config.SessionCookie)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Less(t, c.MaxAge, 0)
}
