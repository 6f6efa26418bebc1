package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/juncos22/projecthub/pkg/models"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentTenantFetches bounds the fan-out of a batched cross-tenant read.
const maxConcurrentTenantFetches = 8

// PostgresStore implements the Store interface using pgx/v5. Every read is
// tenant-scoped in SQL, so isolation holds at the query level.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// --- Tenants ---

func (s *PostgresStore) GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error) {
	var t models.Tenant
	err := s.pool.QueryRow(ctx,
		`SELECT id, name FROM tenants WHERE id = $1`, tenantID,
	).Scan(&t.ID, &t.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

func (s *PostgresStore) GetTenants(ctx context.Context, tenantIDs []string) ([]models.Tenant, error) {
	if len(tenantIDs) == 0 {
		return []models.Tenant{}, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, name FROM tenants WHERE id = ANY($1)`, tenantIDs)
	if err != nil {
		return nil, fmt.Errorf("get tenants: %w", err)
	}
	defer rows.Close()

	found := make(map[string]models.Tenant)
	for rows.Next() {
		var t models.Tenant
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		found[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get tenants: %w", err)
	}

	// Project the rows back over the request so that order is preserved,
	// unknown IDs are omitted, and each requested occurrence resolves
	// independently (a duplicated ID yields a duplicated entry).
	tenants := make([]models.Tenant, 0, len(tenantIDs))
	for _, id := range tenantIDs {
		if t, ok := found[id]; ok {
			tenants = append(tenants, t)
		}
	}
	return tenants, nil
}

func (s *PostgresStore) CreateTenant(ctx context.Context, tenant *models.Tenant) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO tenants (id, name) VALUES ($1, $2)`, tenant.ID, tenant.Name)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create tenant: %w", err)
	}
	return nil
}

// --- Projects ---

func (s *PostgresStore) GetProjectsForTenant(ctx context.Context, tenantID string) ([]models.Project, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, status, tenant_id, description, created_at
		 FROM projects WHERE tenant_id = $1 ORDER BY created_at, id`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("get projects for tenant: %w", err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &p.TenantID, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get projects for tenant: %w", err)
	}
	return projects, nil
}

func (s *PostgresStore) GetProjectsForTenants(ctx context.Context, tenantIDs []string) (map[string][]models.Project, error) {
	result := make(map[string][]models.Project, len(tenantIDs))
	if len(tenantIDs) == 0 {
		return result, nil
	}

	// One independent, tenant-scoped query per tenant, fanned out for
	// latency. Each goroutine writes only its own map key, and any failed
	// fetch cancels the rest: the batch returns complete or not at all.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentTenantFetches)

	var mu sync.Mutex
	seen := make(map[string]bool, len(tenantIDs))
	for _, tenantID := range tenantIDs {
		if seen[tenantID] {
			continue
		}
		seen[tenantID] = true

		g.Go(func() error {
			projects, err := s.GetProjectsForTenant(gctx, tenantID)
			if err != nil {
				return err
			}
			mu.Lock()
			result[tenantID] = projects
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PostgresStore) GetProjectByID(ctx context.Context, id string, tenantID string) (*models.Project, error) {
	var p models.Project
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, status, tenant_id, description, created_at
		 FROM projects WHERE id = $1 AND tenant_id = $2`, id, tenantID,
	).Scan(&p.ID, &p.Name, &p.Status, &p.TenantID, &p.Description, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

func (s *PostgresStore) CreateProject(ctx context.Context, project *models.Project) error {
	if !project.Status.Valid() {
		return ErrInvalidStatus
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO projects (id, name, status, tenant_id, description, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		project.ID, project.Name, project.Status, project.TenantID, project.Description, project.CreatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// isDuplicateKeyError checks if a pgx error is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}
