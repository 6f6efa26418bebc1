package models

// DashboardStats summarizes a single tenant's projects by status.
// Invariant: TotalProjects == ActiveProjects + ArchivedProjects.
type DashboardStats struct {
	TotalProjects    int `json:"total_projects"`
	ActiveProjects   int `json:"active_projects"`
	ArchivedProjects int `json:"archived_projects"`
}

// TenantStats is one tenant's record inside a multi-tenant summary. Counts
// derive solely from that tenant's own project list.
// Invariant: ProjectCount == ActiveProjects + ArchivedProjects.
type TenantStats struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ProjectCount     int    `json:"project_count"`
	ActiveProjects   int    `json:"active_projects"`
	ArchivedProjects int    `json:"archived_projects"`
}

// MultiTenantStats holds per-tenant summaries in the order the tenants were
// requested.
type MultiTenantStats struct {
	Tenants []TenantStats `json:"tenants"`
}
