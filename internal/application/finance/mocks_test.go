package finance

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vyapar/backend/internal/domain/finance"
	"github.com/vyapar/backend/internal/domain/identity"
	"github.com/vyapar/backend/internal/domain/trade"
)

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *finance.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) FindDatedBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time, inclusiveEnd bool) ([]finance.Expense, error) {
	args := m.Called(ctx, tenantID, from, to, inclusiveEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *trade.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockSaleRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trade.Sale, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindCreatedBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]trade.Sale, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) MaxBillNumber(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

type MockOrderGateway struct {
	mock.Mock
}

func (m *MockOrderGateway) CreateOrder(ctx context.Context, req finance.OrderRequest) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type MockSignatureVerifier struct {
	mock.Mock
}

func (m *MockSignatureVerifier) Verify(orderID, paymentID, signature string) bool {
	return m.Called(orderID, paymentID, signature).Bool(0)
}

type MockReportRenderer struct {
	mock.Mock
}

func (m *MockReportRenderer) Render(businessName string, report *finance.DailyReport, sales []trade.Sale) ([]byte, error) {
	args := m.Called(businessName, report, sales)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportRenderer) FileName(report *finance.DailyReport) string {
	return m.Called(report).String(0)
}

func (m *MockReportRenderer) ContentType() string {
	return m.Called().String(0)
}
