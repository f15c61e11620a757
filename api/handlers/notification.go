package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/legalaid-ng/legalaid-api/api"
	"github.com/legalaid-ng/legalaid-api/api/actions"
	"github.com/legalaid-ng/legalaid-api/api/realtime"
	"github.com/legalaid-ng/legalaid-api/api/session"
)

// Notification handles notification requests and the notification socket
type Notification struct {
	Actions *actions.Actions
	Hub     *realtime.Hub
}

// NotificationsHandler returns the caller's latest notifications, ?limit= of them
func (n Notification) NotificationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	limit := queryInt(r, "limit", actions.DefaultNotificationLimit)
	writeResult(w, n.Actions.ListNotifications(ctx, session.FromContext(r.Context()), limit), http.StatusOK)
}

// MarkReadHandler marks the notification in the path as read
func (n Notification) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res := n.Actions.MarkNotificationRead(ctx, session.FromContext(r.Context()), mux.Vars(r)["id"])
	writeResult(w, res, http.StatusOK)
}

// CreateNotificationHandler lets an admin message a litigant or lawyer
func (n Notification) CreateNotificationHandler(w http.ResponseWriter, r *http.Request) {
	var in actions.NewNotification
	if !decode(w, r, &in) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	writeResult(w, n.Actions.CreateNotification(ctx, session.FromContext(r.Context()), in), http.StatusCreated)
}

// NotificationsWebSocket streams new notifications to the signed in account
func (n Notification) NotificationsWebSocket(w http.ResponseWriter, r *http.Request) {
	n.Hub.ServeWS(w, r)
}
