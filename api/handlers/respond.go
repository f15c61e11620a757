package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/config"
	"github.com/legalaid-ng/legalaid-api/models"
)

// statusFor maps a failed result kind to its HTTP status code
func statusFor(kind models.ResultKind) int {
	switch kind {
	case models.KindValidation:
		return http.StatusBadRequest
	case models.KindUnauthorized:
		return http.StatusUnauthorized
	case models.KindForbidden:
		return http.StatusForbidden
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeResult encodes res, using okStatus when the action succeeded
func writeResult(w http.ResponseWriter, res models.ActionResult, okStatus int) {
	status := okStatus
	if !res.Success {
		status = statusFor(res.Kind)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(res)
}

// decode reads the JSON body into v. It answers 400 and returns false on failure.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return false
	}
	return true
}

// requireRole rejects requests without a session with 401, and sessions of any other
// role with 403
func requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := session.FromContext(r.Context())
			if !s.Authenticated() {
				writeResult(w, models.Fail(models.KindUnauthorized, "You must be signed in"), http.StatusOK)
				return
			}
			if !s.Is(roles...) {
				writeResult(w, models.Fail(models.KindForbidden, "You are not allowed to do this"), http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// queryInt returns the positive integer query parameter name, or def
func queryInt(r *http.Request, name string, def int64) int64 {
	if v := r.URL.Query().Get(name); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}
