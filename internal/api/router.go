package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	mw "github.com/juncos22/projecthub/internal/api/middleware"
	"github.com/juncos22/projecthub/internal/api/response"
)

// Dependencies holds all handler and middleware dependencies for the router.
type Dependencies struct {
	RateLimit *mw.RateLimit

	HealthHandler        http.HandlerFunc
	TenantHandler        http.HandlerFunc
	DashboardHandler     http.HandlerFunc
	ProjectListHandler   http.HandlerFunc
	ProjectDetailHandler http.HandlerFunc
}

// NewRouter builds the Chi router with middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	// Public health check
	r.Get("/api/v1/health", orNotImplemented(deps.HealthHandler))

	// Rate-limited data routes
	r.Group(func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit.Limit)
		}

		r.Get("/api/v1/tenants/{slug}", orNotImplemented(deps.TenantHandler))
		r.Get("/api/v1/tenants/{slug}/dashboard", orNotImplemented(deps.DashboardHandler))
		r.Get("/api/v1/tenants/{slug}/projects", orNotImplemented(deps.ProjectListHandler))
		r.Get("/api/v1/tenants/{slug}/projects/{projectID}", orNotImplemented(deps.ProjectDetailHandler))
	})

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "NOT_IMPLEMENTED", "Endpoint not yet implemented", nil)
	}
}
