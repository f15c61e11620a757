// Package session issues and reads the signed session cookie shared by every
// subdomain, and carries the resolved Session through request contexts.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/legalaid-ng/legalaid-api/config"
	"github.com/legalaid-ng/legalaid-api/models"
)

// ErrNoSession is returned when the request carries no usable session
var ErrNoSession = errors.New("no session")

// Session is the authenticated identity an action runs as
type Session struct {
	AccountID string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      models.Role `json:"role"`
}

// Authenticated reports whether s identifies an account
func (s *Session) Authenticated() bool {
	return s != nil && s.AccountID != ""
}

// Is reports whether s is authenticated with one of roles
func (s *Session) Is(roles ...models.Role) bool {
	if !s.Authenticated() {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// FromAccount builds the session of account
func FromAccount(account models.Account) *Session {
	return &Session{
		AccountID: account.ID,
		Email:     account.Details.Email,
		Name:      account.DisplayName(),
		Role:      account.Details.Role,
	}
}

// Claims are the JWT claims stored in the session cookie
type Claims struct {
	jwt.RegisteredClaims
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
}

// Manager signs, parses and clears session cookies
type Manager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	domain     string
	secure     bool
	now        func() time.Time
}

// NewManager builds a Manager from the session settings in conf
func NewManager(conf *config.Config) *Manager {
	domain := conf.RootDomain
	if domain == "localhost" {
		// browsers reject Domain=localhost; a host-only cookie still works per subdomain
		domain = ""
	}
	return &Manager{
		secret:     []byte(conf.SessionSecret),
		ttl:        conf.SessionTTL,
		cookieName: conf.SessionCookie,
		domain:     domain,
		secure:     conf.SecureCookies,
		now:        time.Now,
	}
}

// Token signs a session token for s
func (m *Manager) Token(s *Session) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.AccountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email: s.Email,
		Name:  s.Name,
		Role:  s.Role,
	})
	return token.SignedString(m.secret)
}

// Parse validates a session token and returns its session
func (m *Manager) Parse(tokenString string) (*Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrNoSession
	}
	return &Session{
		AccountID: claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		Role:      claims.Role,
	}, nil
}

// Issue writes a session cookie for s
func (m *Manager) Issue(w http.ResponseWriter, s *Session) error {
	token, err := m.Token(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, m.cookie(token, m.now().Add(m.ttl), int(m.ttl.Seconds())))
	return nil
}

// Clear expires the session cookie
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie("", time.Unix(0, 0), -1))
}

// Read returns the session carried by the request cookie
func (m *Manager) Read(r *http.Request) (*Session, error) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return nil, ErrNoSession
	}
	return m.Parse(c.Value)
}

func (m *Manager) cookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		Domain:   m.domain,
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

type contextKey struct{}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored in ctx. An anonymous, non-nil session is
// returned when there is none, so callers can always ask it questions.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(contextKey{}).(*Session); ok && s != nil {
		return s
	}
	return &Session{}
}
