package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/juncos22/projecthub/internal/api/response"
	"github.com/juncos22/projecthub/internal/store"
	"github.com/juncos22/projecthub/pkg/models"
	"github.com/juncos22/projecthub/pkg/slug"
)

// NewTenantHandler returns an http.HandlerFunc for GET /api/v1/tenants/{slug}.
// A single-tenant slug yields one tenant object, a multi-tenant slug yields
// the list of tenants in slug order. Every named tenant must exist.
func NewTenantHandler(q Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantIDs := slug.Parse(chi.URLParam(r, "slug"))
		if len(tenantIDs) == 0 {
			invalidSlug(w)
			return
		}

		tenants := make([]models.Tenant, 0, len(tenantIDs))
		for _, id := range tenantIDs {
			tenant, err := q.TenantInfo(r.Context(), id)
			if errors.Is(err, store.ErrNotFound) {
				response.Error(w, http.StatusNotFound, "TENANT_NOT_FOUND",
					"Tenant not found", map[string]any{"tenant_id": id})
				return
			}
			if err != nil {
				backendError(w)
				return
			}
			tenants = append(tenants, *tenant)
		}

		if len(tenants) == 1 {
			response.JSON(w, tenants[0])
			return
		}
		response.JSON(w, tenants)
	}
}
