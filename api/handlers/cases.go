package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/legalaid-ng/legalaid-api/api"
	"github.com/legalaid-ng/legalaid-api/api/actions"
	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/models"
)

const defaultLawyerListLimit = 50

// Case handles case, hearing and dashboard requests
type Case struct {
	Actions *actions.Actions
}

type assignRequest struct {
	LawyerID string `json:"lawyerId"`
}

// caseRef resolves the case a route addresses, by number on the litigant and lawyer
// segments and by id on the admin segment
func caseRef(r *http.Request) actions.CaseRef {
	vars := mux.Vars(r)
	if number, ok := vars["caseNumber"]; ok {
		return actions.ByNumber(number)
	}
	return actions.ByID(vars["id"])
}

// CreateCaseHandler opens a case for the signed in litigant
func (c Case) CreateCaseHandler(w http.ResponseWriter, r *http.Request) {
	var in actions.NewCase
	if !decode(w, r, &in) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	writeResult(w, c.Actions.CreateCase(ctx, session.FromContext(r.Context()), in), http.StatusCreated)
}

// CaseHandler returns a case with its hearings
func (c Case) CaseHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	writeResult(w, c.Actions.GetCase(ctx, session.FromContext(r.Context()), caseRef(r)), http.StatusOK)
}

// CloseCaseHandler closes an assigned case
func (c Case) CloseCaseHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	writeResult(w, c.Actions.CloseCase(ctx, session.FromContext(r.Context()), caseRef(r)), http.StatusOK)
}

// SubmitCVHandler records a lawyer's application for the case in the path
func (c Case) SubmitCVHandler(w http.ResponseWriter, r *http.Request) {
	var in actions.NewCoverLetter
	if !decode(w, r, &in) {
		return
	}
	in.CaseNumber = mux.Vars(r)["caseNumber"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	writeResult(w, c.Actions.SubmitCV(ctx, session.FromContext(r.Context()), in), http.StatusCreated)
}

// CreateHearingHandler schedules a court hearing
func (c Case) CreateHearingHandler(w http.ResponseWriter, r *http.Request) {
	var in actions.NewHearing
	if !decode(w, r, &in) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	writeResult(w, c.Actions.CreateCourtHearing(ctx, session.FromContext(r.Context()), in), http.StatusCreated)
}

// AssignLawyerHandler assigns the lawyer in the body to the case in the path
func (c Case) AssignLawyerHandler(w http.ResponseWriter, r *http.Request) {
	var in assignRequest
	if !decode(w, r, &in) {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res := c.Actions.AssignLawyer(ctx, session.FromContext(r.Context()), mux.Vars(r)["id"], in.LawyerID)
	writeResult(w, res, http.StatusOK)
}

// CoverLettersHandler lists the applications for a case
func (c Case) CoverLettersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res := c.Actions.ListCoverLetters(ctx, session.FromContext(r.Context()), mux.Vars(r)["id"])
	writeResult(w, res, http.StatusOK)
}

// ListCasesHandler pages through cases, optionally filtered by ?status=
func (c Case) ListCasesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	status := models.CaseStatus(r.URL.Query().Get("status"))
	res := c.Actions.ListCases(ctx, session.FromContext(r.Context()), status, queryInt(r, "page", 1))
	writeResult(w, res, http.StatusOK)
}

// LawyersHandler lists lawyer accounts
func (c Case) LawyersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res := c.Actions.ListLawyers(ctx, session.FromContext(r.Context()), queryInt(r, "limit", defaultLawyerListLimit))
	writeResult(w, res, http.StatusOK)
}

// ClientDashboardHandler returns the litigant dashboard
func (c Case) ClientDashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	writeResult(w, c.Actions.ClientDashboard(ctx, session.FromContext(r.Context())), http.StatusOK)
}

// LawyerDashboardHandler returns the lawyer dashboard
func (c Case) LawyerDashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	writeResult(w, c.Actions.LawyerDashboard(ctx, session.FromContext(r.Context())), http.StatusOK)
}

// LawyerCalendarHandler returns every upcoming hearing of the lawyer's cases
func (c Case) LawyerCalendarHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	writeResult(w, c.Actions.LawyerCalendar(ctx, session.FromContext(r.Context())), http.StatusOK)
}
