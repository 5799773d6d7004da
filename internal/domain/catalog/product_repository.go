package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/vyapar/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence.
// All methods are tenant scoped.
// FindByIDForTenant returns ErrProductNotFound when the product is absent or foreign,
// and FindAllForTenant lists products ordered by name.
type ProductRepository interface {
	shared.TenantRepository[Product]

	// DeleteForTenant deletes a product, returning ErrProductNotFound when nothing matched
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// DecrementStock subtracts qty from the product's stock in one statement.
	// It reports whether a row matched; a missing or foreign product is not an error.
	DecrementStock(ctx context.Context, tenantID, id uuid.UUID, qty int) (bool, error)
}
