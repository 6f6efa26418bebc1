// Package handler maps HTTP requests onto the query service. Handlers own
// slug parsing and status-code mapping; all data access goes through the
// Queries interface.
package handler

import (
	"context"
	"net/http"

	"github.com/juncos22/projecthub/internal/api/response"
	"github.com/juncos22/projecthub/pkg/models"
)

// Queries defines the read operations the handlers depend on.
type Queries interface {
	TenantInfo(ctx context.Context, tenantID string) (*models.Tenant, error)
	DashboardStats(ctx context.Context, tenantID string) (models.DashboardStats, error)
	ProjectDetail(ctx context.Context, projectID string, tenantIDs []string) (*models.Project, error)
	MultiTenantStats(ctx context.Context, tenantIDs []string) (models.MultiTenantStats, error)
	MultiTenantProjects(ctx context.Context, tenantIDs []string) (map[string][]models.Project, error)
}

// backendError reports a storage/transport failure to the client.
func backendError(w http.ResponseWriter) {
	response.Error(w, http.StatusServiceUnavailable, "BACKEND_UNAVAILABLE",
		"The data backend is not available", nil)
}

// invalidSlug reports a slug that normalized to zero tenant IDs.
func invalidSlug(w http.ResponseWriter) {
	response.Error(w, http.StatusBadRequest, "INVALID_SLUG",
		"The tenant slug contains no tenant IDs", nil)
}
