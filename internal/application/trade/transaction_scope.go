package trade

import (
	"context"

	"github.com/vyapar/backend/internal/domain/catalog"
	"github.com/vyapar/backend/internal/domain/partner"
	"github.com/vyapar/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories a checkout touches.
// When a function is executed within a transaction scope, all repository operations
// are committed or rolled back together.
type TransactionScope interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the checkout repositories within one scope.
// BillNumbers may live outside the transaction (the Redis counter does); a
// rolled-back sale then leaves a gap in the bill sequence, never a duplicate.
type TransactionalRepositories interface {
	Sales() trade.SaleRepository
	Products() catalog.ProductRepository
	Customers() partner.CustomerRepository
	BillNumbers() trade.BillNumberAllocator
}

// NoOpTransactionScope runs every step on its own connection with no enclosing
// transaction. Each step commits independently, so a failure part way through
// leaves the earlier steps in place.
type NoOpTransactionScope struct {
	sales     trade.SaleRepository
	products  catalog.ProductRepository
	customers partner.CustomerRepository
	bills     trade.BillNumberAllocator
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	sales trade.SaleRepository,
	products catalog.ProductRepository,
	customers partner.CustomerRepository,
	bills trade.BillNumberAllocator,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		sales:     sales,
		products:  products,
		customers: customers,
		bills:     bills,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Sales returns the sale repository.
func (s *NoOpTransactionScope) Sales() trade.SaleRepository {
	return s.sales
}

// Products returns the product repository.
func (s *NoOpTransactionScope) Products() catalog.ProductRepository {
	return s.products
}

// Customers returns the customer repository.
func (s *NoOpTransactionScope) Customers() partner.CustomerRepository {
	return s.customers
}

// BillNumbers returns the bill number allocator.
func (s *NoOpTransactionScope) BillNumbers() trade.BillNumberAllocator {
	return s.bills
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
