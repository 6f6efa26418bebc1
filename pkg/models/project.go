package models

import "time"

// ProjectStatus is a closed enum: a project is either active or archived.
type ProjectStatus string

const (
	StatusActive   ProjectStatus = "active"
	StatusArchived ProjectStatus = "archived"
)

// Valid reports whether s is one of the two known statuses.
func (s ProjectStatus) Valid() bool {
	return s == StatusActive || s == StatusArchived
}

// Project represents a project within a tenant. TenantID is authoritative:
// any lookup path that would return a project under a tenant other than its
// owner must report not-found instead.
type Project struct {
	ID          string        `db:"id"          json:"id"`
	Name        string        `db:"name"        json:"name"`
	Status      ProjectStatus `db:"status"      json:"status"`
	TenantID    string        `db:"tenant_id"   json:"tenant_id"`
	Description *string       `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time     `db:"created_at"  json:"created_at"`
}
