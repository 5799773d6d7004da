package shared

import (
	"context"

	"github.com/google/uuid"
)

// TenantRepository is the minimal contract shared by tenant-scoped repositories
type TenantRepository[T any] interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*T, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]T, error)
	Save(ctx context.Context, entity *T) error
}
