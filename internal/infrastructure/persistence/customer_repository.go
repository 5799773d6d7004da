package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vyapar/backend/internal/domain/partner"
	"github.com/vyapar/backend/internal/infrastructure/persistence/models"
	"github.com/vyapar/backend/internal/infrastructure/persistence/tenant"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByIDForTenant finds a customer by ID within a tenant
func (r *GormCustomerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Scopes(tenant.ScopeID(tenantID, id)).
		First(&model).Error; err != nil {
		return nil, translateNotFound(err, partner.ErrCustomerNotFound)
	}
	return model.ToDomain(), nil
}

// FindByPhone finds a customer by phone within a tenant
func (r *GormCustomerRepository) FindByPhone(ctx context.Context, tenantID uuid.UUID, phone string) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("phone = ?", partner.NormalizePhone(phone)).
		First(&model).Error; err != nil {
		return nil, translateNotFound(err, partner.ErrCustomerNotFound)
	}
	return model.ToDomain(), nil
}

// FindWithDues lists customers with an outstanding balance above zero, ordered by name
func (r *GormCustomerRepository) FindWithDues(ctx context.Context, tenantID uuid.UUID) ([]partner.Customer, error) {
	var rows []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("outstanding_balance > ?", 0).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	customers := make([]partner.Customer, len(rows))
	for i := range rows {
		customers[i] = *rows[i].ToDomain()
	}
	return customers, nil
}

// AddCredit upserts the (tenant, phone) customer and adds amount to its balance
// in one statement. An existing customer keeps its name.
func (r *GormCustomerRepository) AddCredit(ctx context.Context, tenantID uuid.UUID, name, phone string, amount decimal.Decimal) (*partner.Customer, error) {
	customer, err := partner.NewCustomer(tenantID, name, phone, amount)
	if err != nil {
		return nil, err
	}

	model := models.CustomerModelFromDomain(customer)
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}, {Name: "phone"}},
			DoUpdates: clause.Assignments(map[string]any{
				"outstanding_balance": gorm.Expr("customers.outstanding_balance + excluded.outstanding_balance"),
				"version":             gorm.Expr("customers.version + 1"),
				"updated_at":          gorm.Expr("excluded.updated_at"),
			}),
		}).
		Create(model).Error
	if err != nil {
		return nil, err
	}

	return r.FindByPhone(ctx, tenantID, customer.Phone)
}

// ApplyPayment subtracts amount from the balance in a single UPDATE.
// The balance has no floor and may go negative.
func (r *GormCustomerRepository) ApplyPayment(ctx context.Context, tenantID, id uuid.UUID, amount decimal.Decimal) (*partner.Customer, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Scopes(tenant.ScopeID(tenantID, id)).
		Updates(map[string]any{
			"outstanding_balance": gorm.Expr("outstanding_balance - ?", amount),
			"version":             gorm.Expr("version + 1"),
			"updated_at":          time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, partner.ErrCustomerNotFound
	}
	return r.FindByIDForTenant(ctx, tenantID, id)
}

var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
