package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalaid-ng/legalaid-api/config"
	"github.com/legalaid-ng/legalaid-api/models"
)

func newTestManager(root string) *Manager {
	m := NewManager(&config.Config{
		RootDomain:    root,
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
		SessionCookie: "legalaid_session",
	})
	return m
}

func TestManager_IssueAndRead(t *testing.T) {
	m := newTestManager("legalaid.ng")
	account := models.Account{ID: "acc-1", Details: models.AccountDetails{Email: "ada@example.com", Role: models.RoleUser, FirstName: "Ada"}}

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, FromAccount(account)))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "legalaid_session", cookies[0].Name)
	assert.Equal(t, "legalaid.ng", cookies[0].Domain)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "http://app.legalaid.ng/dashboard", nil)
	req.AddCookie(cookies[0])
	s, err := m.Read(req)
	require.NoError(t, err)
	assert.Equal(t, &Session{AccountID: "acc-1", Email: "ada@example.com", Name: "Ada", Role: models.RoleUser}, s)
}

func TestManager_LocalhostCookieIsHostOnly(t *testing.T) {
	m := newTestManager("localhost")
	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, &Session{AccountID: "acc-1"}))
	assert.Equal(t, "", rec.Result().Cookies()[0].Domain)
}

func TestManager_RejectsBadTokens(t *testing.T) {
	m := newTestManager("legalaid.ng")
	other := newTestManager("legalaid.ng")
	other.secret = []byte("another-secret")

	forged, err := other.Token(&Session{AccountID: "acc-1", Role: models.RoleAdmin})
	require.NoError(t, err)
	_, err = m.Parse(forged)
	assert.Error(t, err)

	expired := newTestManager("legalaid.ng")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Token(&Session{AccountID: "acc-1"})
	require.NoError(t, err)
	_, err = m.Parse(old)
	assert.Error(t, err)

	_, err = m.Read(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_Clear(t *testing.T) {
	m := newTestManager("legalaid.ng")
	rec := httptest.NewRecorder()
	m.Clear(rec)

	c := rec.Result().Cookies()[0]
	assert.Equal(t, "", c.Value)
	assert.Equal(t, -1, c.MaxAge)
}

func TestSessionRoles(t *testing.T) {
	var anon *Session
	assert.False(t, anon.Authenticated())
	assert.False(t, anon.Is(models.RoleUser))

	s := &Session{AccountID: "acc-1", Role: models.RoleLawyer}
	assert.True(t, s.Is(models.RoleAdmin, models.RoleLawyer))
	assert.False(t, s.Is(models.RoleAdmin))
}

func TestContext(t *testing.T) {
	assert.False(t, FromContext(context.Background()).Authenticated())

	ctx := WithSession(context.Background(), &Session{AccountID: "acc-1"})
	assert.Equal(t, "acc-1", FromContext(ctx).AccountID)
}
