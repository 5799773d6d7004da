package persistence

import (
	"context"

	"gorm.io/gorm"

	apptrade "github.com/vyapar/backend/internal/application/trade"
	"github.com/vyapar/backend/internal/domain/catalog"
	"github.com/vyapar/backend/internal/domain/partner"
	"github.com/vyapar/backend/internal/domain/trade"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of the checkout repositories.
type GormTransactionScope struct {
	db    *gorm.DB
	bills trade.BillNumberAllocator
}

// TransactionScopeOption configures a GormTransactionScope
type TransactionScopeOption func(*GormTransactionScope)

// WithBillNumberAllocator replaces the transactional bill counter with an
// external allocator (the Redis counter).
func WithBillNumberAllocator(bills trade.BillNumberAllocator) TransactionScopeOption {
	return func(s *GormTransactionScope) {
		s.bills = bills
	}
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB, opts ...TransactionScopeOption) *GormTransactionScope {
	s := &GormTransactionScope{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx, bills: s.bills})
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx    *gorm.DB
	bills trade.BillNumberAllocator
}

func (r *gormTransactionalRepositories) Sales() trade.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

func (r *gormTransactionalRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) Customers() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

func (r *gormTransactionalRepositories) BillNumbers() trade.BillNumberAllocator {
	if r.bills != nil {
		return r.bills
	}
	return NewGormBillCounter(r.tx)
}

// NewNoOpTransactionScope wires the non-atomic scope over plain repositories
// sharing db.
func NewNoOpTransactionScope(db *gorm.DB, bills trade.BillNumberAllocator) *apptrade.NoOpTransactionScope {
	if bills == nil {
		bills = NewGormBillCounter(db)
	}
	return apptrade.NewNoOpTransactionScope(
		NewGormSaleRepository(db),
		NewGormProductRepository(db),
		NewGormCustomerRepository(db),
		bills,
	)
}

var _ apptrade.TransactionScope = (*GormTransactionScope)(nil)
var _ apptrade.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
