package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vyapar/backend/internal/domain/catalog"
	"github.com/vyapar/backend/internal/infrastructure/persistence/models"
	"github.com/vyapar/backend/internal/infrastructure/persistence/tenant"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByIDForTenant finds a product by ID within a tenant
func (r *GormProductRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).
		Scopes(tenant.ScopeID(tenantID, id)).
		First(&model).Error; err != nil {
		return nil, translateNotFound(err, catalog.ErrProductNotFound)
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists the tenant's products ordered by name
func (r *GormProductRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]catalog.Product, error) {
	var rows []models.ProductModel
	if err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	products := make([]catalog.Product, len(rows))
	for i := range rows {
		products[i] = *rows[i].ToDomain()
	}
	return products, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(models.ProductModelFromDomain(product)).Error
}

// DeleteForTenant deletes a product owned by the tenant
func (r *GormProductRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(tenant.ScopeID(tenantID, id)).
		Delete(&models.ProductModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return catalog.ErrProductNotFound
	}
	return nil
}

// DecrementStock subtracts qty from stock in a single UPDATE
func (r *GormProductRepository) DecrementStock(ctx context.Context, tenantID, id uuid.UUID, qty int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Scopes(tenant.ScopeID(tenantID, id)).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
