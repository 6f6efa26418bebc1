// Package query composes the slug parser, the store, and the stats
// aggregator into the read operations exposed to callers. Each operation is
// a thin, stateless pipeline over the injected store.
package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/juncos22/projecthub/internal/stats"
	"github.com/juncos22/projecthub/internal/store"
	"github.com/juncos22/projecthub/pkg/models"
)

// Service orchestrates tenant and project read queries.
type Service struct {
	store store.Store
}

// NewService creates a new Service backed by st.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// TenantInfo returns a tenant's metadata. Reports store.ErrNotFound for an
// unknown tenant.
func (s *Service) TenantInfo(ctx context.Context, tenantID string) (*models.Tenant, error) {
	tenant, err := s.store.GetTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("tenant info: %w", err)
	}
	return tenant, nil
}

// DashboardStats summarizes one tenant's projects by status. An unknown
// tenant simply has zero projects.
func (s *Service) DashboardStats(ctx context.Context, tenantID string) (models.DashboardStats, error) {
	projects, err := s.store.GetProjectsForTenant(ctx, tenantID)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats.CalculateDashboardStats(projects), nil
}

// ProjectDetail looks up a project under each of the given tenants in order
// and returns the first match. Project IDs can collide across tenants, so
// the first-in-list tenant wins; if no tenant owns the project, reports
// store.ErrNotFound.
func (s *Service) ProjectDetail(ctx context.Context, projectID string, tenantIDs []string) (*models.Project, error) {
	for _, tenantID := range tenantIDs {
		project, err := s.store.GetProjectByID(ctx, projectID, tenantID)
		if err == nil {
			return project, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("project detail: %w", err)
		}
	}
	return nil, store.ErrNotFound
}

// MultiTenantStats resolves every requested tenant and returns one stats
// record per tenant, in request order. If any requested tenant does not
// exist the whole query fails with a TenantsNotFoundError naming the
// missing IDs.
func (s *Service) MultiTenantStats(ctx context.Context, tenantIDs []string) (models.MultiTenantStats, error) {
	tenants, err := s.store.GetTenants(ctx, tenantIDs)
	if err != nil {
		return models.MultiTenantStats{}, fmt.Errorf("multi-tenant stats: %w", err)
	}

	if len(tenants) != len(tenantIDs) {
		return models.MultiTenantStats{}, &TenantsNotFoundError{Missing: missingIDs(tenantIDs, tenants)}
	}

	projectsByTenant, err := s.store.GetProjectsForTenants(ctx, tenantIDs)
	if err != nil {
		return models.MultiTenantStats{}, fmt.Errorf("multi-tenant stats: %w", err)
	}

	return stats.CalculateMultiTenantStats(tenants, projectsByTenant), nil
}

// MultiTenantProjects returns each requested tenant's own project list,
// keyed by tenant ID. Callers decide whether to keep the grouping or
// flatten it with stats.MergeProjectLists.
func (s *Service) MultiTenantProjects(ctx context.Context, tenantIDs []string) (map[string][]models.Project, error) {
	projectsByTenant, err := s.store.GetProjectsForTenants(ctx, tenantIDs)
	if err != nil {
		return nil, fmt.Errorf("multi-tenant projects: %w", err)
	}
	return projectsByTenant, nil
}

// missingIDs returns the requested IDs with no matching tenant, in request
// order.
func missingIDs(requested []string, found []models.Tenant) []string {
	foundSet := make(map[string]bool, len(found))
	for _, t := range found {
		foundSet[t.ID] = true
	}

	missing := make([]string, 0)
	for _, id := range requested {
		if !foundSet[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
