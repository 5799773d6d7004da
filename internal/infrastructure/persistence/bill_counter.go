package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vyapar/backend/internal/domain/trade"
)

// The first allocation seeds the counter from any sales that predate it,
// so tenants migrated from the old read-then-write numbering continue
// their sequence. Both PostgreSQL and SQLite (3.35+) accept this statement.
const nextBillNumberSQL = `INSERT INTO bill_counters (tenant_id, last_value, updated_at)
VALUES (?, COALESCE((SELECT MAX(bill_number) FROM sales WHERE tenant_id = ?), ?) + 1, ?)
ON CONFLICT (tenant_id) DO UPDATE SET last_value = bill_counters.last_value + 1, updated_at = excluded.updated_at
RETURNING last_value`

// GormBillCounter allocates bill numbers from the bill_counters table.
// The upsert takes a row lock, so concurrent checkouts for one tenant
// serialize on it and never observe the same value.
type GormBillCounter struct {
	db *gorm.DB
}

// NewGormBillCounter creates a new GormBillCounter
func NewGormBillCounter(db *gorm.DB) *GormBillCounter {
	return &GormBillCounter{db: db}
}

// Next returns the tenant's next bill number
func (c *GormBillCounter) Next(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var next int64
	err := c.db.WithContext(ctx).
		Raw(nextBillNumberSQL, tenantID, tenantID, trade.FirstBillNumber-1, time.Now().UTC()).
		Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("allocate bill number: %w", err)
	}
	if next == 0 {
		return 0, fmt.Errorf("allocate bill number: counter returned no row")
	}
	return next, nil
}

var _ trade.BillNumberAllocator = (*GormBillCounter)(nil)
