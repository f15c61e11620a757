package handlers

import (
	"net/http"

	"github.com/legalaid-ng/legalaid-api/api"
	"github.com/legalaid-ng/legalaid-api/api/actions"
	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/config"
	"github.com/legalaid-ng/legalaid-api/models"
)

// Auth handles sign in, sign up and sign out for the browser segments
type Auth struct {
	Actions  *actions.Actions
	Sessions *session.Manager
}

// LoginHandler signs in an account of one of roles and sets the session cookie
func (a Auth) LoginHandler(roles ...models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in actions.Credentials
		if !decode(w, r, &in) {
			return
		}

		ctx, cancel := api.WithQueryTimeout(r.Context())
		defer cancel()

		res, s := a.Actions.Login(ctx, in, roles...)
		if !a.issue(w, s) {
			return
		}
		writeResult(w, res, http.StatusOK)
	}
}

// SignUpHandler registers a litigant and signs them in
func (a Auth) SignUpHandler(w http.ResponseWriter, r *http.Request) {
	var in actions.UserSignUp
	if !decode(w, r, &in) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res, s := a.Actions.SignUp(ctx, in)
	if !a.issue(w, s) {
		return
	}
	writeResult(w, res, http.StatusCreated)
}

// RegisterLawyerHandler registers a lawyer. The lawyer signs in separately.
func (a Auth) RegisterLawyerHandler(w http.ResponseWriter, r *http.Request) {
	var in actions.LawyerSignUp
	if !decode(w, r, &in) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	writeResult(w, a.Actions.RegisterLawyer(ctx, in), http.StatusCreated)
}

// LogoutHandler expires the session cookie
func (a Auth) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	a.Sessions.Clear(w)
	writeResult(w, models.Ok("Signed out successfully", nil), http.StatusOK)
}

// issue sets the cookie of s, if any. It answers 500 and returns false when the
// token cannot be signed.
func (a Auth) issue(w http.ResponseWriter, s *session.Session) bool {
	if s == nil {
		return true
	}
	if err := a.Sessions.Issue(w, s); err != nil {
		config.ErrorStatus("failed to issue session", http.StatusInternalServerError, w, err)
		return false
	}
	return true
}
