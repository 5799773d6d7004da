package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SaleRepository persists sales
type SaleRepository interface {
	// Create inserts the sale and its line items
	Create(ctx context.Context, sale *Sale) error

	// FindByIDForTenant loads a sale with its items
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Sale, error)

	// FindCreatedBetween lists sales with from <= created_at <= to, oldest first
	FindCreatedBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]Sale, error)

	// MaxBillNumber returns the highest bill number used by the tenant, or 0
	MaxBillNumber(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// BillNumberAllocator hands out per-tenant bill numbers. Next must be atomic:
// two concurrent callers for the same tenant never receive the same number.
// The first number for a tenant continues after any existing sales, or is
// FirstBillNumber when there are none.
type BillNumberAllocator interface {
	Next(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
