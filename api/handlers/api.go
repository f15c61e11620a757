package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/legalaid-ng/legalaid-api/api"
	"github.com/legalaid-ng/legalaid-api/api/actions"
	"github.com/legalaid-ng/legalaid-api/api/email"
	"github.com/legalaid-ng/legalaid-api/api/realtime"
	"github.com/legalaid-ng/legalaid-api/api/scheduler"
	"github.com/legalaid-ng/legalaid-api/api/session"
	"github.com/legalaid-ng/legalaid-api/config"
	"github.com/legalaid-ng/legalaid-api/databases"
	"github.com/legalaid-ng/legalaid-api/databases/postgres"
	"github.com/legalaid-ng/legalaid-api/models"
)

const (
	metricsMaxRoutes = 500
	metricsWindow    = 24 * time.Hour
)

// App stores the router and the services behind it, so they can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Store     *databases.Store
	Actions   *actions.Actions
	Sessions  *session.Manager
	Tokens    *api.TokenAuth
	Hub       *realtime.Hub
	Metrics   *api.MetricsCollector
	Notifier  *email.Notifier
	Scheduler *scheduler.Scheduler

	closeDB func(ctx context.Context) error
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := api.New()

	auth := Auth{Actions: a.Actions, Sessions: a.Sessions}
	c := Case{Actions: a.Actions}
	n := Notification{Actions: a.Actions, Hub: a.Hub}
	m := MetricsHandler{Metrics: a.Metrics}

	user := requireRole(models.RoleUser)
	lawyer := requireRole(models.RoleLawyer)
	admin := requireRole(models.RoleAdmin)

	// litigant segment, app.{root}
	app := r.PathPrefix("/app").Subrouter()
	app.HandleFunc("/login", auth.LoginHandler(models.RoleUser)).Methods("POST")
	app.HandleFunc("/signup", auth.SignUpHandler).Methods("POST")
	app.HandleFunc("/logout", auth.LogoutHandler).Methods("POST")
	app.HandleFunc("/uploads/signature", NewCloudinaryHandler(&a.Config, FolderProofOfIndigency).GenerateSignature).Methods("POST")
	app.Handle("/dashboard", user(http.HandlerFunc(c.ClientDashboardHandler))).Methods("GET")
	app.Handle("/cases", user(http.HandlerFunc(c.CreateCaseHandler))).Methods("POST")
	app.Handle("/cases/{caseNumber}", user(http.HandlerFunc(c.CaseHandler))).Methods("GET")
	app.Handle("/notifications", user(http.HandlerFunc(n.NotificationsHandler))).Methods("GET")
	app.Handle("/notifications/{id}/read", user(http.HandlerFunc(n.MarkReadHandler))).Methods("POST")
	app.Handle("/ws/notifications", user(http.HandlerFunc(n.NotificationsWebSocket))).Methods("GET")

	// lawyer portal, web.{root}
	web := r.PathPrefix("/web").Subrouter()
	web.HandleFunc("/register", auth.RegisterLawyerHandler).Methods("POST")
	web.HandleFunc("/signin", auth.LoginHandler(models.RoleLawyer)).Methods("POST")
	web.HandleFunc("/logout", auth.LogoutHandler).Methods("POST")
	web.HandleFunc("/uploads/signature", NewCloudinaryHandler(&a.Config, FolderLawyerAvatars).GenerateSignature).Methods("POST")
	web.Handle("/dashboard", lawyer(http.HandlerFunc(c.LawyerDashboardHandler))).Methods("GET")
	web.Handle("/calendar", lawyer(http.HandlerFunc(c.LawyerCalendarHandler))).Methods("GET")
	web.Handle("/cases/{caseNumber}", lawyer(http.HandlerFunc(c.CaseHandler))).Methods("GET")
	web.Handle("/cases/{caseNumber}/cv", lawyer(http.HandlerFunc(c.SubmitCVHandler))).Methods("POST")
	web.Handle("/cases/{caseNumber}/close", lawyer(http.HandlerFunc(c.CloseCaseHandler))).Methods("POST")
	web.Handle("/hearings", lawyer(http.HandlerFunc(c.CreateHearingHandler))).Methods("POST")
	web.Handle("/notifications", lawyer(http.HandlerFunc(n.NotificationsHandler))).Methods("GET")
	web.Handle("/notifications/{id}/read", lawyer(http.HandlerFunc(n.MarkReadHandler))).Methods("POST")
	web.Handle("/ws/notifications", lawyer(http.HandlerFunc(n.NotificationsWebSocket))).Methods("GET")

	// back office, admin.{root}
	adm := r.PathPrefix("/admin").Subrouter()
	adm.HandleFunc("/auth", auth.LoginHandler(models.RoleAdmin)).Methods("POST")
	adm.HandleFunc("/logout", auth.LogoutHandler).Methods("POST")
	adm.Handle("/cases", admin(http.HandlerFunc(c.ListCasesHandler))).Methods("GET")
	adm.Handle("/cases/{id}", admin(http.HandlerFunc(c.CaseHandler))).Methods("GET")
	adm.Handle("/cases/{id}/assign", admin(http.HandlerFunc(c.AssignLawyerHandler))).Methods("POST")
	adm.Handle("/cases/{id}/close", admin(http.HandlerFunc(c.CloseCaseHandler))).Methods("POST")
	adm.Handle("/cases/{id}/cover-letters", admin(http.HandlerFunc(c.CoverLettersHandler))).Methods("GET")
	adm.Handle("/lawyers", admin(http.HandlerFunc(c.LawyersHandler))).Methods("GET")
	adm.Handle("/notifications", admin(http.HandlerFunc(n.CreateNotificationHandler))).Methods("POST")
	adm.Handle("/hearings", admin(http.HandlerFunc(c.CreateHearingHandler))).Methods("POST")
	adm.Handle("/metrics", admin(http.HandlerFunc(m.GetMetricsDashboard))).Methods("GET")

	// token clients, api.{root}
	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.HandleFunc("/auth/token", a.Tokens.CreateToken).Methods("POST")
	apiCreate.HandleFunc("/auth/logout", a.Tokens.RevokeToken).Methods("DELETE")
	apiCreate.Handle("/cases/{caseNumber}", a.Tokens.Middleware(http.HandlerFunc(c.CaseHandler))).Methods("GET")
	apiCreate.Handle("/notifications", a.Tokens.Middleware(http.HandlerFunc(n.NotificationsHandler))).Methods("GET")
	apiCreate.Handle("/notifications/{id}/read", a.Tokens.Middleware(http.HandlerFunc(n.MarkReadHandler))).Methods("POST")
	apiCreate.Handle("/uploads/signature", a.Tokens.Middleware(http.HandlerFunc(NewCloudinaryHandler(&a.Config, FolderAttachments).GenerateSignature))).Methods("POST")

	return r
}

// Handler wraps the router with the request log, timeout, session and subdomain
// middleware. Subdomain rewriting has to happen before the router matches a route.
func (a *App) Handler() http.Handler {
	var h http.Handler = a.Router
	h = api.SubdomainMiddleware(api.SubdomainRouter{RootDomain: a.Config.RootDomain})(h)
	h = api.SessionMiddleware(a.Sessions)(h)
	h = api.TimeoutMiddleware(a.Config.RequestTimeout)(h)
	h = api.RequestLogMiddleware(a.Metrics)(h)
	return h
}

// Wire builds the services around store and creates the router. mail may be nil.
func (a *App) Wire(ctx context.Context, store *databases.Store, mail actions.Deliverer) {
	a.Store = store
	a.Hub = realtime.NewHub(a.Config.RootDomain)
	a.Actions = actions.New(store, mail, a.Hub, a.Config.BaseURL)
	a.Sessions = session.NewManager(&a.Config)
	a.Tokens = api.NewTokenAuth(ctx, store.Accounts, a.Config.SessionTTL)
	a.Metrics = api.NewMetricsCollector(metricsMaxRoutes, metricsWindow)
	a.initializeRoutes()
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize(ctx context.Context) error {
	store, err := a.Connect(ctx)
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With("error", err).Error("failed to connect to database")
		return err
	}
	zap.S().Infow("legalaid-api has connected to the database", "driver", a.Config.DatabaseDriver)

	var sender email.Sender
	if a.Config.SendGridAPIKey != "" {
		sender = email.NewSendGridSender(a.Config.SendGridAPIKey, a.Config.EmailFromAddress, a.Config.EmailFromName)
	} else {
		zap.S().Warn("SENDGRID_API_KEY is not set, notification emails will be marked failed")
	}
	a.Notifier = email.NewNotifier(email.NewDispatcher(sender, a.Config.SupportEmail), store.Notifications)

	a.Wire(ctx, store, a.Notifier)
	a.Scheduler = scheduler.NewScheduler(&a.Config, store, a.Notifier, a.Actions)
	return nil
}

// Close waits for in-flight emails, disconnects sockets and releases the database
func (a *App) Close(ctx context.Context) error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.Notifier != nil {
		a.Notifier.Wait()
	}
	if a.Hub != nil {
		a.Hub.Close()
	}
	if a.closeDB != nil {
		return a.closeDB(ctx)
	}
	return nil
}

// Connect opens the configured database, migrating or indexing it, and returns the
// store over it. Close releases it.
func (a *App) Connect(ctx context.Context) (*databases.Store, error) {
	switch a.Config.DatabaseDriver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, a.Config.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		a.closeDB = func(context.Context) error { return db.Close() }
		return postgres.NewStore(db), nil
	case config.DriverMongo:
		client, err := databases.NewClient(&a.Config)
		if err != nil {
			return nil, err
		}
		if err := client.Connect(ctx); err != nil {
			return nil, err
		}
		db := databases.NewDatabase(&a.Config, client)
		if err := databases.EnsureIndexes(ctx, db); err != nil {
			client.Disconnect(ctx)
			return nil, err
		}
		a.closeDB = client.Disconnect
		return databases.NewMongoStore(db), nil
	}
	return nil, errors.New("unknown database driver " + a.Config.DatabaseDriver)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}
