// Package models contains shared data models used across the ProjectHub codebase.
package models

// Tenant represents an organization or team. Every project belongs to a tenant,
// and the tenant ID doubles as the isolation key: data owned by one tenant must
// never be returned, counted, or leaked under another tenant's ID.
type Tenant struct {
	ID   string `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
}
