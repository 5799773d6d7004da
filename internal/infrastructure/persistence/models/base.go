package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/vyapar/backend/internal/domain/shared"
)

// AggregateModel holds the columns every aggregate table shares. Times are
// written in UTC so day-range filters compare the same way on both drivers.
type AggregateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
	Version   int       `gorm:"not null;default:1"`
}

func (m *AggregateModel) AggregateRoot() shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{
		BaseEntity: shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Version:    m.Version,
	}
}

func (m *AggregateModel) SetAggregateRoot(a shared.BaseAggregateRoot) {
	m.ID = a.ID
	m.CreatedAt = a.CreatedAt.UTC()
	m.UpdatedAt = a.UpdatedAt.UTC()
	m.Version = a.Version
}

// TenantAggregateModel adds the owning shop. Every tenant table is indexed on it.
type TenantAggregateModel struct {
	AggregateModel
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (m *TenantAggregateModel) TenantRoot() shared.TenantAggregateRoot {
	return shared.TenantAggregateRoot{BaseAggregateRoot: m.AggregateRoot(), TenantID: m.TenantID}
}

func (m *TenantAggregateModel) SetTenantRoot(t shared.TenantAggregateRoot) {
	m.SetAggregateRoot(t.BaseAggregateRoot)
	m.TenantID = t.TenantID
}

// All lists the models in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&CustomerModel{},
		&SaleModel{},
		&SaleItemModel{},
		&BillCounterModel{},
		&ExpenseModel{},
	}
}
