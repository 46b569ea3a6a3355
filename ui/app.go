package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"streaksim/app"
	"streaksim/internal"
)

// App represents the HTTP application serving the streak estimator
type App struct {
	router    *chi.Mux
	estimator *app.EstimatorService
	logger    *internal.Logger
}

// NewApp creates a new HTTP application around an estimator service
func NewApp(estimator *app.EstimatorService, logger *internal.Logger) *App {
	a := &App{
		router:    chi.NewRouter(),
		estimator: estimator,
		logger:    logger,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(a.recoverJSON)
	a.router.Use(corsHeaders)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Post("/simulate", a.handleSimulate)
	a.router.Options("/simulate", a.handlePreflight)
	a.router.Get("/healthz", a.handleHealth)
}

// Router exposes the configured mux, mainly for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server on the given address
func (a *App) Start(addr string) error {
	a.logger.Info("Starting streak estimator server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// corsHeaders applies the permissive cross-origin headers carried by
// every response, preflight included.
func corsHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token")
		h.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		next.ServeHTTP(w, r)
	})
}

// recoverJSON turns panics into JSON 500 responses instead of letting
// the connection die.
func (a *App) recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				a.logger.Error("panic serving %s: %v", r.URL.Path, rec)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
