package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity is the identity and timestamps every stored record has.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newBaseEntity(at time.Time) BaseEntity {
	return BaseEntity{ID: uuid.New(), CreatedAt: at, UpdatedAt: at}
}

// BaseAggregateRoot adds a version that moves on every mutation.
type BaseAggregateRoot struct {
	BaseEntity
	Version int
}

// NewBaseAggregateRoot starts a fresh aggregate at version 1.
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{BaseEntity: newBaseEntity(time.Now()), Version: 1}
}

// IncrementVersion marks the aggregate as changed now.
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
	a.UpdatedAt = time.Now()
}

// TenantAggregateRoot belongs to one shop owner. Repositories filter every
// read and write on TenantID.
type TenantAggregateRoot struct {
	BaseAggregateRoot
	TenantID uuid.UUID
}

// NewTenantAggregateRoot starts a fresh aggregate owned by tenantID.
func NewTenantAggregateRoot(tenantID uuid.UUID) TenantAggregateRoot {
	return NewTenantAggregateRootAt(tenantID, time.Now())
}

// NewTenantAggregateRootAt is NewTenantAggregateRoot with a fixed creation time.
func NewTenantAggregateRootAt(tenantID uuid.UUID, at time.Time) TenantAggregateRoot {
	return TenantAggregateRoot{
		BaseAggregateRoot: BaseAggregateRoot{BaseEntity: newBaseEntity(at), Version: 1},
		TenantID:          tenantID,
	}
}
