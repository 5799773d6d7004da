package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vyapar/backend/internal/domain/shared"
	"github.com/vyapar/backend/internal/domain/trade"
	"github.com/vyapar/backend/internal/infrastructure/persistence/models"
	"github.com/vyapar/backend/internal/infrastructure/persistence/tenant"
)

// GormSaleRepository implements trade.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// Create inserts the sale header and then its lines
func (r *GormSaleRepository) Create(ctx context.Context, sale *trade.Sale) error {
	model := models.SaleModelFromDomain(sale)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		if isDuplicateKey(err) {
			return shared.NewDomainError("DUPLICATE_BILL_NUMBER", "Bill number already used")
		}
		return err
	}
	if len(model.Items) == 0 {
		return nil
	}
	return db.Create(&model.Items).Error
}

// FindByIDForTenant loads a sale with its items
func (r *GormSaleRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trade.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).
		Scopes(tenant.ScopeID(tenantID, id)).
		Preload("Items", orderLines).
		First(&model).Error; err != nil {
		return nil, translateNotFound(err, shared.ErrNotFound)
	}
	return model.ToDomain(), nil
}

// FindCreatedBetween lists sales with from <= created_at <= to, oldest first
func (r *GormSaleRepository) FindCreatedBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]trade.Sale, error) {
	var rows []models.SaleModel
	if err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("created_at >= ? AND created_at <= ?", from.UTC(), to.UTC()).
		Preload("Items", orderLines).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	sales := make([]trade.Sale, len(rows))
	for i := range rows {
		sales[i] = *rows[i].ToDomain()
	}
	return sales, nil
}

// MaxBillNumber returns the highest bill number used by the tenant, or 0
func (r *GormSaleRepository) MaxBillNumber(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var maxBill int64
	if err := r.db.WithContext(ctx).
		Model(&models.SaleModel{}).
		Scopes(tenant.Scope(tenantID)).
		Select("COALESCE(MAX(bill_number), 0)").
		Scan(&maxBill).Error; err != nil {
		return 0, err
	}
	return maxBill, nil
}

func orderLines(db *gorm.DB) *gorm.DB {
	return db.Order("line_no ASC")
}

var _ trade.SaleRepository = (*GormSaleRepository)(nil)
