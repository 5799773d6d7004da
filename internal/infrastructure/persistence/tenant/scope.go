// Package tenant provides multi-tenant query scoping for GORM.
//
// Every tenant-owned table carries a tenant_id column. Repositories apply
// these scopes instead of hand-writing the condition so that a nil tenant
// fails the statement rather than silently matching every row.
//
// Usage:
//
//	db.WithContext(ctx).Scopes(tenant.Scope(tenantID)).Find(&products)
package tenant

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Column is the tenant column shared by all tenant-owned tables
const Column = "tenant_id"

// ErrTenantIDRequired is returned when a scoped statement is built without a tenant
var ErrTenantIDRequired = errors.New("tenant_id is required")

// Scope restricts a statement to rows owned by tenantID
func Scope(tenantID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if tenantID == uuid.Nil {
			_ = db.AddError(ErrTenantIDRequired)
			return db
		}
		return db.Where(Column+" = ?", tenantID)
	}
}

// ScopeID restricts a statement to one row owned by tenantID.
// A row that exists under another tenant is indistinguishable from a missing one.
func ScopeID(tenantID, id uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return Scope(tenantID)(db).Where("id = ?", id)
	}
}
