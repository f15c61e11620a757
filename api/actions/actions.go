// Package actions holds the case lifecycle, notification and authentication actions.
// Every action takes the caller's session explicitly and answers with a
// models.ActionResult; no action returns a Go error to its caller.
package actions

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/models"
)

// Deliverer emails a stored notification to its recipient. Implementations must not
// block the caller.
type Deliverer interface {
	Deliver(n models.Notification, recipient models.Account)
}

// Pusher forwards a stored notification to the recipient's open connections
type Pusher interface {
	Push(accountID string, n models.Notification)
}

// Actions runs the application's actions against a store
type Actions struct {
	store   *databases.Store
	mail    Deliverer
	push    Pusher
	baseURL string

	now       func() time.Time
	newID     func() string
	caseToken func() string
}

// New returns Actions backed by store. mail and push may be nil.
func New(store *databases.Store, mail Deliverer, push Pusher, baseURL string) *Actions {
	return &Actions{
		store:     store,
		mail:      mail,
		push:      push,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		now:       time.Now,
		newID:     uuid.NewString,
		caseToken: randomCaseToken,
	}
}

// outbound is a committed notification waiting for best-effort delivery
type outbound struct {
	n  models.Notification
	to models.Account
}

// deliver hands committed notifications to the email and push channels. It must only
// run after the transaction that stored them has committed.
func (a *Actions) deliver(out ...outbound) {
	for _, o := range out {
		if a.mail != nil {
			a.mail.Deliver(o.n, o.to)
		}
		if a.push != nil {
			a.push.Push(o.to.ID, o.n)
		}
	}
}

// notification builds a pending notification addressed to recipient
func (a *Actions) notification(recipient models.Account, subject, message, caseID string, env models.EmailEnvelope) models.Notification {
	now := a.now()
	role := recipient.Details.Role
	if role != models.RoleLawyer {
		role = models.RoleUser
	}
	return models.Notification{
		ID: a.newID(),
		Details: models.NotificationDetails{
			RecipientID:   recipient.ID,
			RecipientRole: role,
			Subject:       subject,
			Message:       message,
			CaseID:        caseID,
			Email:         env,
			EmailStatus:   models.EmailPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

func (a *Actions) dashboardURL() string {
	return a.baseURL + "/dashboard"
}

// authorize fails unless s is signed in with one of roles. With no roles any signed
// in account passes.
func authorize(s *session.Session, roles ...models.Role) (models.ActionResult, bool) {
	if !s.Authenticated() {
		return models.Fail(models.KindUnauthorized, "You must be signed in"), false
	}
	if len(roles) > 0 && !s.Is(roles...) {
		return models.Fail(models.KindForbidden, "You are not allowed to do this"), false
	}
	return models.ActionResult{}, true
}

// required reports whether every value is non-blank
func required(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func internal(message string, err error, keysAndValues ...interface{}) models.ActionResult {
	zap.S().Errorw(message, append([]interface{}{"error", err}, keysAndValues...)...)
	return models.Fail(models.KindInternal, message)
}
