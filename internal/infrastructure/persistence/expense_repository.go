package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vyapar/backend/internal/domain/finance"
	"github.com/vyapar/backend/internal/infrastructure/persistence/models"
	"github.com/vyapar/backend/internal/infrastructure/persistence/tenant"
)

// GormExpenseRepository implements finance.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// Create inserts an expense
func (r *GormExpenseRepository) Create(ctx context.Context, expense *finance.Expense) error {
	return r.db.WithContext(ctx).Create(models.ExpenseModelFromDomain(expense)).Error
}

// FindDatedBetween lists expenses dated in [from, to) or [from, to], oldest first
func (r *GormExpenseRepository) FindDatedBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time, inclusiveEnd bool) ([]finance.Expense, error) {
	upper := "date < ?"
	if inclusiveEnd {
		upper = "date <= ?"
	}

	var rows []models.ExpenseModel
	if err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(tenantID)).
		Where("date >= ?", from.UTC()).
		Where(upper, to.UTC()).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	expenses := make([]finance.Expense, len(rows))
	for i := range rows {
		expenses[i] = *rows[i].ToDomain()
	}
	return expenses, nil
}

var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
