package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptrade "github.com/vyapar/backend/internal/application/trade"
	"github.com/vyapar/backend/internal/domain/trade"
)

func TestGormTransactionScope_CommitsAllSteps(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	tenantID := uuid.New()
	product := saveProduct(t, NewGormProductRepository(db), tenantID, "Biscuits", "10", 50)

	scope := NewGormTransactionScope(db)
	err := scope.Execute(ctx, func(repos apptrade.TransactionalRepositories) error {
		bill, err := repos.BillNumbers().Next(ctx, tenantID)
		if err != nil {
			return err
		}
		sale := newTestSale(t, tenantID, bill, trade.PaymentMethodUdhaar, 60, time.Now())
		if err := repos.Sales().Create(ctx, sale); err != nil {
			return err
		}
		if _, err := repos.Products().DecrementStock(ctx, tenantID, product.ID, 6); err != nil {
			return err
		}
		_, err = repos.Customers().AddCredit(ctx, tenantID, "Ramesh", "9876543210", decimal.NewFromInt(60))
		return err
	})
	require.NoError(t, err)

	maxBill, err := NewGormSaleRepository(db).MaxBillNumber(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(101), maxBill)

	p, err := NewGormProductRepository(db).FindByIDForTenant(ctx, tenantID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 44, p.Stock)

	c, err := NewGormCustomerRepository(db).FindByPhone(ctx, tenantID, "9876543210")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(60).Equal(c.OutstandingBalance))
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	tenantID := uuid.New()
	product := saveProduct(t, NewGormProductRepository(db), tenantID, "Biscuits", "10", 50)
	boom := errors.New("credit ledger unavailable")

	err := NewGormTransactionScope(db).Execute(ctx, func(repos apptrade.TransactionalRepositories) error {
		bill, err := repos.BillNumbers().Next(ctx, tenantID)
		if err != nil {
			return err
		}
		if err := repos.Sales().Create(ctx, newTestSale(t, tenantID, bill, trade.PaymentMethodCash, 10, time.Now())); err != nil {
			return err
		}
		if _, err := repos.Products().DecrementStock(ctx, tenantID, product.ID, 1); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	maxBill, err := NewGormSaleRepository(db).MaxBillNumber(ctx, tenantID)
	require.NoError(t, err)
	assert.Zero(t, maxBill)

	p, err := NewGormProductRepository(db).FindByIDForTenant(ctx, tenantID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, p.Stock)

	next, err := NewGormBillCounter(db).Next(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, trade.FirstBillNumber, next, "counter advance is rolled back with the sale")
}

type fixedAllocator struct{ next int64 }

func (f *fixedAllocator) Next(context.Context, uuid.UUID) (int64, error) {
	f.next++
	return f.next, nil
}

func TestGormTransactionScope_ExternalAllocator(t *testing.T) {
	alloc := &fixedAllocator{next: 900}
	scope := NewGormTransactionScope(setupTestDB(t), WithBillNumberAllocator(alloc))

	err := scope.Execute(context.Background(), func(repos apptrade.TransactionalRepositories) error {
		got, err := repos.BillNumbers().Next(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, int64(901), got)
		return nil
	})
	require.NoError(t, err)
}

func TestNewNoOpTransactionScope_CommitsEachStep(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	tenantID := uuid.New()
	product := saveProduct(t, NewGormProductRepository(db), tenantID, "Biscuits", "10", 50)

	err := NewNoOpTransactionScope(db, nil).Execute(ctx, func(repos apptrade.TransactionalRepositories) error {
		if _, err := repos.Products().DecrementStock(ctx, tenantID, product.ID, 5); err != nil {
			return err
		}
		return errors.New("later step failed")
	})
	assert.Error(t, err)

	p, err := NewGormProductRepository(db).FindByIDForTenant(ctx, tenantID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, p.Stock, "earlier steps stay committed")
}
