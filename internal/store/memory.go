package store

import (
	"context"
	"sort"
	"sync"

	"github.com/juncos22/projecthub/pkg/models"
)

// MemoryStore implements the Store interface with in-process maps. It is an
// explicitly constructed instance, not package-level state, so tests inject
// exactly the fixture they need. Safe for concurrent use; all reads return
// copies so callers cannot mutate the fixture.
type MemoryStore struct {
	mu       sync.RWMutex
	tenants  map[string]models.Tenant
	projects map[string][]models.Project // keyed by owning tenant ID
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tenants:  make(map[string]models.Tenant),
		projects: make(map[string][]models.Project),
	}
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// --- Tenants ---

func (s *MemoryStore) GetTenant(_ context.Context, tenantID string) (*models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tenants[tenantID]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *MemoryStore) GetTenants(_ context.Context, tenantIDs []string) ([]models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tenants := make([]models.Tenant, 0, len(tenantIDs))
	for _, id := range tenantIDs {
		if t, ok := s.tenants[id]; ok {
			tenants = append(tenants, t)
		}
	}
	return tenants, nil
}

func (s *MemoryStore) CreateTenant(_ context.Context, tenant *models.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tenants[tenant.ID]; exists {
		return ErrDuplicateKey
	}
	s.tenants[tenant.ID] = *tenant
	return nil
}

// --- Projects ---

func (s *MemoryStore) GetProjectsForTenant(_ context.Context, tenantID string) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.projectsForTenantLocked(tenantID), nil
}

func (s *MemoryStore) GetProjectsForTenants(_ context.Context, tenantIDs []string) (map[string][]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]models.Project, len(tenantIDs))
	for _, id := range tenantIDs {
		result[id] = s.projectsForTenantLocked(id)
	}
	return result, nil
}

func (s *MemoryStore) GetProjectByID(_ context.Context, id string, tenantID string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Only the requested tenant's own bucket is searched, so a project ID
	// that exists under a different tenant can never match.
	for _, p := range s.projects[tenantID] {
		if p.ID == id && p.TenantID == tenantID {
			project := p
			return &project, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateProject(_ context.Context, project *models.Project) error {
	if !project.Status.Valid() {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.projects[project.TenantID] {
		if p.ID == project.ID {
			return ErrDuplicateKey
		}
	}
	s.projects[project.TenantID] = append(s.projects[project.TenantID], *project)
	return nil
}

// projectsForTenantLocked returns a sorted copy of a tenant's projects.
// Callers must hold s.mu.
func (s *MemoryStore) projectsForTenantLocked(tenantID string) []models.Project {
	projects := make([]models.Project, len(s.projects[tenantID]))
	copy(projects, s.projects[tenantID])
	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.Before(projects[j].CreatedAt)
		}
		return projects[i].ID < projects[j].ID
	})
	return projects
}
