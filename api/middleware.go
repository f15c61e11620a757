package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"

	"github.com/legalaid-ng/legalaid-api/api/credentials"
	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

// TokenAuth guards the api segment. Clients exchange basic credentials for a
// bearer token once and send the token afterwards.
type TokenAuth struct {
	Accounts      databases.AccountDatabase
	authenticator auth.Authenticator
	cache         store.Cache
}

// NewTokenAuth sets up the go-guardian basic and cached bearer strategies
func NewTokenAuth(ctx context.Context, accounts databases.AccountDatabase, ttl time.Duration) *TokenAuth {
	ta := &TokenAuth{Accounts: accounts}
	ta.authenticator = auth.New()
	ta.cache = store.NewFIFO(ctx, ttl)
	basicStrategy := basic.New(ta.ValidateAccount, ta.cache)
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, ta.cache)

	ta.authenticator.EnableStrategy(basic.StrategyKey, basicStrategy)
	ta.authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
	return ta
}

// Middleware rejects unauthenticated requests and puts the caller's session in the
// request context
func (ta *TokenAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := ta.authenticator.Authenticate(r)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		zap.S().Debugw("token authenticated", "accountId", info.ID())
		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sessionFromInfo(info))))
	})
}

// CreateToken exchanges basic credentials for a bearer token
func (ta *TokenAuth) CreateToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	info, err := ta.authenticator.Strategy(basic.StrategyKey).Authenticate(r.Context(), r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid credentials"}`))
		return
	}

	token := uuid.New().String()
	tokenStrategy := ta.authenticator.Strategy(bearer.CachedStrategyKey)
	if err := auth.Append(tokenStrategy, token, info, r); err != nil {
		http.Error(w, "failed to store token", http.StatusInternalServerError)
		return
	}

	response := map[string]string{
		"token": token,
		"_id":   info.ID(),
	}
	responseBody, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	w.Write(responseBody)
}

// RevokeToken revokes the bearer token the request carries
func (ta *TokenAuth) RevokeToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	reqToken, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || reqToken == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "missing bearer token"}`))
		return
	}

	tokenStrategy := ta.authenticator.Strategy(bearer.CachedStrategyKey)
	if err := auth.Revoke(tokenStrategy, reqToken, r); err != nil {
		zap.S().Warnw("failed to revoke token", "error", err)
	}
	body, _ := json.Marshal(map[string]string{"revoked token": reqToken})
	w.Write(body)
}

// ValidateAccount checks basic credentials against the account store
func (ta *TokenAuth) ValidateAccount(ctx context.Context, r *http.Request, email, password string) (auth.Info, error) {
	account, err := ta.Accounts.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, databases.ErrNotFound) {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	var hash string
	if account != nil {
		hash = account.Details.Password
	}
	if err := credentials.Verify(hash, password); err != nil || account == nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	return auth.NewDefaultUser(account.Details.Email, account.ID,
		[]string{string(account.Details.Role)},
		map[string][]string{"name": {account.DisplayName()}}), nil
}

func sessionFromInfo(info auth.Info) *session.Session {
	s := &session.Session{
		AccountID: info.ID(),
		Email:     info.UserName(),
	}
	if groups := info.Groups(); len(groups) > 0 {
		s.Role = models.Role(groups[0])
	}
	if names := info.Extensions()["name"]; len(names) > 0 {
		s.Name = names[0]
	}
	return s
}
