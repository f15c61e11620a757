package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/config"
	"github.com/legalaid-ng/legalaid-api/models"
)

func TestSubdomainRouter_Decide(t *testing.T) {
	sr := SubdomainRouter{RootDomain: "legalaid.ng"}

	tests := []struct {
		name   string
		req    RouteRequest
		expect RouteDecision
	}{
		{
			name:   "bare domain login redirects to app",
			req:    RouteRequest{Scheme: "https", Host: "legalaid.ng", Path: "/login"},
			expect: RouteDecision{Action: ActionRedirect, Target: "https://app.legalaid.ng/login"},
		},
		{
			name:   "bare domain signin keeps port and query",
			req:    RouteRequest{Scheme: "http", Host: "legalaid.ng:3000", Path: "/signin", RawQuery: "next=%2Fcalendar"},
			expect: RouteDecision{Action: ActionRedirect, Target: "http://app.legalaid.ng:3000/signin?next=%2Fcalendar"},
		},
		{
			name:   "bare domain public prefix with subpath",
			req:    RouteRequest{Scheme: "https", Host: "legalaid.ng", Path: "/signup/lawyer"},
			expect: RouteDecision{Action: ActionRedirect, Target: "https://app.legalaid.ng/signup/lawyer"},
		},
		{
			name:   "bare domain lookalike path passes through",
			req:    RouteRequest{Host: "legalaid.ng", Path: "/loginhelp"},
			expect: RouteDecision{Action: ActionNext},
		},
		{
			name:   "bare domain other path passes through",
			req:    RouteRequest{Host: "legalaid.ng", Path: "/about"},
			expect: RouteDecision{Action: ActionNext},
		},
		{
			name:   "app dashboard without session",
			req:    RouteRequest{Host: "app.legalaid.ng", Path: "/dashboard"},
			expect: RouteDecision{Action: ActionRedirect, Target: "/login"},
		},
		{
			name:   "app dashboard with session",
			req:    RouteRequest{Host: "app.legalaid.ng", Path: "/dashboard", Authenticated: true},
			expect: RouteDecision{Action: ActionRewrite, Target: "/app/dashboard"},
		},
		{
			name:   "app public path rewrites without session",
			req:    RouteRequest{Host: "app.legalaid.ng", Path: "/login"},
			expect: RouteDecision{Action: ActionRewrite, Target: "/app/login"},
		},
		{
			name:   "web has no protected paths",
			req:    RouteRequest{Host: "web.legalaid.ng", Path: "/dashboard", RawQuery: "tab=cases"},
			expect: RouteDecision{Action: ActionRewrite, Target: "/web/dashboard?tab=cases"},
		},
		{
			name:   "admin root without session",
			req:    RouteRequest{Host: "admin.legalaid.ng", Path: "/"},
			expect: RouteDecision{Action: ActionRedirect, Target: "/auth"},
		},
		{
			name:   "admin settings subpath without session",
			req:    RouteRequest{Host: "admin.legalaid.ng", Path: "/settings/users"},
			expect: RouteDecision{Action: ActionRedirect, Target: "/auth"},
		},
		{
			name:   "admin auth page is reachable",
			req:    RouteRequest{Host: "admin.legalaid.ng", Path: "/auth"},
			expect: RouteDecision{Action: ActionRewrite, Target: "/admin/auth"},
		},
		{
			name:   "admin with session",
			req:    RouteRequest{Host: "admin.legalaid.ng", Path: "/orders", Authenticated: true},
			expect: RouteDecision{Action: ActionRewrite, Target: "/admin/orders"},
		},
		{
			name:   "api is never gated",
			req:    RouteRequest{Host: "api.legalaid.ng:8080", Path: "/v1/notifications"},
			expect: RouteDecision{Action: ActionRewrite, Target: "/api/v1/notifications"},
		},
		{
			name:   "unknown subdomain passes through",
			req:    RouteRequest{Host: "blog.legalaid.ng", Path: "/login"},
			expect: RouteDecision{Action: ActionNext},
		},
		{
			name:   "static assets skip routing",
			req:    RouteRequest{Host: "legalaid.ng", Path: "/login/logo.png"},
			expect: RouteDecision{Action: ActionNext},
		},
		{
			name:   "framework assets skip routing",
			req:    RouteRequest{Host: "app.legalaid.ng", Path: "/_next/chunk"},
			expect: RouteDecision{Action: ActionNext},
		},
		{
			name:   "nested subdomain uses the first label",
			req:    RouteRequest{Host: "APP.eu.legalaid.ng", Path: "/dashboard", Authenticated: true},
			expect: RouteDecision{Action: ActionRewrite, Target: "/app/dashboard"},
		},
		{
			name:   "foreign host is treated as bare",
			req:    RouteRequest{Host: "10.0.0.5:8080", Path: "/health"},
			expect: RouteDecision{Action: ActionNext},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, sr.Decide(tt.req))
		})
	}
}

func TestSubdomainRouter_Localhost(t *testing.T) {
	sr := SubdomainRouter{RootDomain: "localhost"}

	assert.Equal(t,
		RouteDecision{Action: ActionRedirect, Target: "http://app.localhost:3000/login"},
		sr.Decide(RouteRequest{Host: "localhost:3000", Path: "/login"}))
	assert.Equal(t,
		RouteDecision{Action: ActionRewrite, Target: "/web/calendar"},
		sr.Decide(RouteRequest{Host: "web.localhost:3000", Path: "/calendar"}))
}

func TestSubdomainMiddleware(t *testing.T) {
	manager := session.NewManager(&config.Config{
		RootDomain:    "legalaid.ng",
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
		SessionCookie: "legalaid_session",
	})

	var servedPath, servedQuery string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		servedPath = r.URL.Path
		servedQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	})
	handler := SessionMiddleware(manager)(SubdomainMiddleware(SubdomainRouter{RootDomain: "legalaid.ng"})(next))

	t.Run("redirects anonymous dashboard", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://app.legalaid.ng/dashboard", nil))
		assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})

	t.Run("rewrites with session", func(t *testing.T) {
		token, err := manager.Token(&session.Session{AccountID: "acc-1", Role: models.RoleUser})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "http://app.legalaid.ng/dashboard?tab=1", nil)
		req.AddCookie(&http.Cookie{Name: "legalaid_session", Value: token})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "/app/dashboard", servedPath)
		assert.Equal(t, "tab=1", servedQuery)
	})

	t.Run("tampered cookie counts as anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://app.legalaid.ng/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: "legalaid_session", Value: "not-a-jwt"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	})
}
