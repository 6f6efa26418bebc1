package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/juncos22/projecthub/internal/api/response"
	"github.com/juncos22/projecthub/internal/stats"
	"github.com/juncos22/projecthub/internal/store"
	"github.com/juncos22/projecthub/pkg/models"
	"github.com/juncos22/projecthub/pkg/slug"
)

// NewProjectListHandler returns an http.HandlerFunc for
// GET /api/v1/tenants/{slug}/projects. A single-tenant slug yields a flat
// project list. A multi-tenant slug yields the per-tenant grouping, or a
// flat list in slug order with ?view=merged. ?status= narrows any of these
// shapes to one project status.
func NewProjectListHandler(q Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantIDs := slug.Parse(chi.URLParam(r, "slug"))
		if len(tenantIDs) == 0 {
			invalidSlug(w)
			return
		}

		var status models.ProjectStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			status = models.ProjectStatus(raw)
			if !status.Valid() {
				response.Error(w, http.StatusBadRequest, "INVALID_STATUS",
					"Unknown project status", map[string]any{"status": raw})
				return
			}
		}

		projectsByTenant, err := q.MultiTenantProjects(r.Context(), tenantIDs)
		if err != nil {
			backendError(w)
			return
		}
		if status != "" {
			for id, projects := range projectsByTenant {
				projectsByTenant[id] = stats.FilterByStatus(projects, status)
			}
		}

		if len(tenantIDs) == 1 {
			response.JSON(w, projectsByTenant[tenantIDs[0]])
			return
		}
		if r.URL.Query().Get("view") == "merged" {
			response.JSON(w, stats.MergeProjectLists(tenantIDs, projectsByTenant))
			return
		}
		response.JSON(w, projectsByTenant)
	}
}

// NewProjectDetailHandler returns an http.HandlerFunc for
// GET /api/v1/tenants/{slug}/projects/{projectID}. With a multi-tenant slug
// the project is looked up under each tenant in slug order and the first
// match wins; a project owned by none of the named tenants is not found,
// even if the ID exists under some other tenant.
func NewProjectDetailHandler(q Queries) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantIDs := slug.Parse(chi.URLParam(r, "slug"))
		if len(tenantIDs) == 0 {
			invalidSlug(w)
			return
		}

		project, err := q.ProjectDetail(r.Context(), chi.URLParam(r, "projectID"), tenantIDs)
		if errors.Is(err, store.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "PROJECT_NOT_FOUND",
				"Project not found", nil)
			return
		}
		if err != nil {
			backendError(w)
			return
		}
		response.JSON(w, project)
	}
}
