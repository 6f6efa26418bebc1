// Package stats computes project summary statistics. All functions are pure:
// no side effects, deterministic, and each tenant's counts derive from that
// tenant's own project list only.
package stats

import (
	"github.com/juncos22/projecthub/pkg/models"
)

// CountByStatus counts projects matching the given status.
func CountByStatus(projects []models.Project, status models.ProjectStatus) int {
	count := 0
	for _, p := range projects {
		if p.Status == status {
			count++
		}
	}
	return count
}

// FilterByStatus returns the projects matching the given status.
// Returns empty slice for no matches (never nil).
func FilterByStatus(projects []models.Project, status models.ProjectStatus) []models.Project {
	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.Status == status {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// CalculateDashboardStats summarizes a single tenant's projects by status.
// Order-independent; the returned stats always satisfy
// TotalProjects == ActiveProjects + ArchivedProjects.
func CalculateDashboardStats(projects []models.Project) models.DashboardStats {
	return models.DashboardStats{
		TotalProjects:    len(projects),
		ActiveProjects:   CountByStatus(projects, models.StatusActive),
		ArchivedProjects: CountByStatus(projects, models.StatusArchived),
	}
}

// CalculateMultiTenantStats produces one record per tenant, in the given
// tenant order, counting each tenant's own project list in a single pass.
// A tenant missing from projectsByTenant is treated as having no projects.
// No accumulator is shared across tenants, so one tenant's projects can
// never bleed into another tenant's counts.
func CalculateMultiTenantStats(tenants []models.Tenant, projectsByTenant map[string][]models.Project) models.MultiTenantStats {
	records := make([]models.TenantStats, 0, len(tenants))

	for _, tenant := range tenants {
		projects := projectsByTenant[tenant.ID]

		active := 0
		archived := 0
		for _, p := range projects {
			switch p.Status {
			case models.StatusActive:
				active++
			case models.StatusArchived:
				archived++
			}
		}

		records = append(records, models.TenantStats{
			ID:               tenant.ID,
			Name:             tenant.Name,
			ProjectCount:     len(projects),
			ActiveProjects:   active,
			ArchivedProjects: archived,
		})
	}

	return models.MultiTenantStats{Tenants: records}
}

// MergeProjectLists flattens a per-tenant project map into a single list.
// tenantIDs fixes the output order: projects appear grouped by tenant, in
// the order the tenant IDs were supplied to the batch fetch.
func MergeProjectLists(tenantIDs []string, projectsByTenant map[string][]models.Project) []models.Project {
	total := 0
	for _, id := range tenantIDs {
		total += len(projectsByTenant[id])
	}

	merged := make([]models.Project, 0, total)
	for _, id := range tenantIDs {
		merged = append(merged, projectsByTenant[id]...)
	}
	return merged
}
