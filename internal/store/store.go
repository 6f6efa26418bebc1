package store

import (
	"context"
	"errors"

	"github.com/juncos22/projecthub/pkg/models"
)

var ErrNotFound = errors.New("resource not found")
var ErrDuplicateKey = errors.New("duplicate key violation")
var ErrInvalidStatus = errors.New("invalid project status")

// Store is the data access interface. All tenant and project reads go
// through here, and every read is scoped to a tenant ID.
//
// Isolation contract: a lookup scoped to tenant X must never return data
// owned by tenant Y, and batch operations must behave as if each tenant
// were fetched independently. A miss is reported as ErrNotFound (single
// lookups) or an empty result (list lookups), never as a backend error;
// backend failures come back as wrapped transport errors, distinguishable
// from ErrNotFound via errors.Is.
type Store interface {
	Ping(ctx context.Context) error

	GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error)
	// GetTenants resolves each requested ID independently, in request order,
	// silently omitting unknown IDs. Duplicate IDs resolve to duplicate
	// entries, so callers detect partial misses by comparing lengths.
	GetTenants(ctx context.Context, tenantIDs []string) ([]models.Tenant, error)

	// GetProjectsForTenant returns only projects owned by tenantID. An
	// unknown tenant yields an empty slice, not an error.
	GetProjectsForTenant(ctx context.Context, tenantID string) ([]models.Project, error)
	// GetProjectsForTenants returns a map whose key set is exactly the
	// requested IDs, each mapped to that tenant's own projects (empty,
	// non-nil slice for projectless tenants). One tenant's fetch must not
	// influence another's result set.
	GetProjectsForTenants(ctx context.Context, tenantIDs []string) (map[string][]models.Project, error)
	// GetProjectByID returns the project only if it exists and is owned by
	// tenantID. A project that exists under a different tenant is reported
	// as ErrNotFound, never as the mismatched record.
	GetProjectByID(ctx context.Context, id string, tenantID string) (*models.Project, error)

	CreateTenant(ctx context.Context, tenant *models.Tenant) error
	CreateProject(ctx context.Context, project *models.Project) error
}
