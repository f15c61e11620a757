package api

import (
	"net"
	"net/http"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/legalaid-ng/legalaid-api/api/session"
)

// RouteAction is what the subdomain router does with a request
type RouteAction string

// Route actions
const (
	ActionNext     RouteAction = "next"
	ActionRedirect RouteAction = "redirect"
	ActionRewrite  RouteAction = "rewrite"
)

// RouteRequest is the part of an HTTP request the subdomain router looks at
type RouteRequest struct {
	Scheme        string
	Host          string
	Path          string
	RawQuery      string
	Authenticated bool
}

// RouteDecision tells the caller to continue, redirect to Target or serve Target
type RouteDecision struct {
	Action RouteAction
	Target string
}

type segment struct {
	prefix    string
	protected []string
	loginPath string
}

var segments = map[string]segment{
	"app":   {prefix: "/app", protected: []string{"/dashboard"}, loginPath: "/login"},
	"web":   {prefix: "/web", loginPath: "/signin"},
	"admin": {prefix: "/admin", protected: []string{"/", "/profile", "/settings", "/checkout", "/orders"}, loginPath: "/auth"},
	"api":   {prefix: "/api"},
}

var publicPaths = []string{"/login", "/signup", "/register", "/signin"}

// SubdomainRouter maps {sub}.{RootDomain} requests onto the /{sub} route segments
type SubdomainRouter struct {
	RootDomain string
}

// Decide picks the routing action for req. It has no side effects.
func (sr SubdomainRouter) Decide(req RouteRequest) RouteDecision {
	if isStaticPath(req.Path) {
		return RouteDecision{Action: ActionNext}
	}

	sub := sr.subdomain(req.Host)
	if sub == "" {
		for _, p := range publicPaths {
			if matchPath(req.Path, p) {
				scheme := req.Scheme
				if scheme == "" {
					scheme = "http"
				}
				return RouteDecision{
					Action: ActionRedirect,
					Target: scheme + "://app." + req.Host + withQuery(req.Path, req.RawQuery),
				}
			}
		}
		return RouteDecision{Action: ActionNext}
	}

	seg, ok := segments[sub]
	if !ok {
		return RouteDecision{Action: ActionNext}
	}
	if !req.Authenticated {
		for _, p := range seg.protected {
			if matchPath(req.Path, p) {
				return RouteDecision{Action: ActionRedirect, Target: seg.loginPath}
			}
		}
	}
	return RouteDecision{Action: ActionRewrite, Target: withQuery(seg.prefix+req.Path, req.RawQuery)}
}

// subdomain returns the first label left of the root domain, or "" when host is
// the root domain itself or lies outside it
func (sr SubdomainRouter) subdomain(host string) string {
	host = strings.ToLower(host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	root := strings.ToLower(sr.RootDomain)
	if host == root || !strings.HasSuffix(host, "."+root) {
		return ""
	}
	labels := strings.Split(strings.TrimSuffix(host, "."+root), ".")
	return labels[0]
}

// matchPath matches p exactly or as a parent directory of reqPath
func matchPath(reqPath, p string) bool {
	if reqPath == p {
		return true
	}
	return p != "/" && strings.HasPrefix(reqPath, p+"/")
}

func isStaticPath(p string) bool {
	if strings.HasPrefix(p, "/_next/") || strings.HasPrefix(p, "/static/") {
		return true
	}
	return strings.Contains(path.Base(p), ".")
}

func withQuery(p, rawQuery string) string {
	if rawQuery == "" {
		return p
	}
	return p + "?" + rawQuery
}

// SubdomainMiddleware applies the router decision before the mux sees the request.
// It must wrap the router, not be registered with Use, because a rewrite changes
// which route matches. The session must already be in the request context.
func SubdomainMiddleware(sr SubdomainRouter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme := "http"
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				scheme = "https"
			}
			decision := sr.Decide(RouteRequest{
				Scheme:        scheme,
				Host:          r.Host,
				Path:          r.URL.Path,
				RawQuery:      r.URL.RawQuery,
				Authenticated: session.FromContext(r.Context()).Authenticated(),
			})

			switch decision.Action {
			case ActionRedirect:
				zap.S().Debugw("subdomain redirect", "host", r.Host, "path", r.URL.Path, "target", decision.Target)
				http.Redirect(w, r, decision.Target, http.StatusTemporaryRedirect)
			case ActionRewrite:
				r2 := r.Clone(r.Context())
				p, q, _ := strings.Cut(decision.Target, "?")
				r2.URL.Path = p
				r2.URL.RawPath = ""
				r2.URL.RawQuery = q
				r2.RequestURI = r2.URL.RequestURI()
				next.ServeHTTP(w, r2)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// SessionMiddleware resolves the session cookie, if any, into the request context
func SessionMiddleware(m *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := m.Read(r)
			if err != nil {
				s = &session.Session{}
			}
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}
