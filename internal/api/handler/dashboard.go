package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/juncos22/projecthub/internal/api/response"
	"github.com/juncos22/projecthub/internal/query"
	"github.com/juncos22/projecthub/pkg/slug"
)

// NewDashboardHandler returns an http.HandlerFunc for
// GET /api/v1/tenants/{slug}/dashboard. A single-tenant slug yields that
// tenant's dashboard stats; a multi-tenant slug yields one stats record per
// tenant, in slug order, and fails if any named tenant is unknown.
func NewDashboardHandler(q Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantIDs := slug.Parse(chi.URLParam(r, "slug"))
		if len(tenantIDs) == 0 {
			invalidSlug(w)
			return
		}

		if len(tenantIDs) == 1 {
			stats, err := q.DashboardStats(r.Context(), tenantIDs[0])
			if err != nil {
				backendError(w)
				return
			}
			response.JSON(w, stats)
			return
		}

		stats, err := q.MultiTenantStats(r.Context(), tenantIDs)
		if err != nil {
			var notFound *query.TenantsNotFoundError
			if errors.As(err, &notFound) {
				response.Error(w, http.StatusNotFound, "TENANTS_NOT_FOUND",
					"One or more tenants not found", map[string]any{"missing": notFound.Missing})
				return
			}
			backendError(w)
			return
		}
		response.JSON(w, stats)
	}
}
