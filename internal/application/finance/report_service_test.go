package finance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/domain/finance"
	"github.com/vyapar/backend/internal/domain/identity"
	"github.com/vyapar/backend/internal/domain/trade"
)

type reportFixture struct {
	tenantID uuid.UUID
	sales    *MockSaleRepository
	expenses *MockExpenseRepository
	users    *MockUserRepository
	renderer *MockReportRenderer
	service  *ReportService
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		tenantID: uuid.New(),
		sales:    new(MockSaleRepository),
		expenses: new(MockExpenseRepository),
		users:    new(MockUserRepository),
		renderer: new(MockReportRenderer),
	}
	f.service = NewReportService(f.sales, f.expenses, f.users, f.renderer, ist, zap.NewNop())
	f.service.now = func() time.Time { return time.Date(2025, 3, 14, 9, 0, 0, 0, ist) }
	return f
}

func saleOf(t *testing.T, tenantID uuid.UUID, bill int64, method trade.PaymentMethod, total int64) trade.Sale {
	t.Helper()
	draft := trade.SaleDraft{
		Items:         []trade.SaleItem{{ProductID: uuid.New(), Name: "Item", Price: decimal.NewFromInt(total), Quantity: 1}},
		TotalAmount:   decimal.NewFromInt(total),
		PaymentMethod: method,
		CustomerName:  "Ramesh",
		CustomerPhone: "9876543210",
	}
	s, err := trade.NewSale(tenantID, bill, draft, time.Date(2025, 3, 10, 11, 0, 0, 0, ist))
	require.NoError(t, err)
	return *s
}

func TestReportService_Daily(t *testing.T) {
	ctx := context.Background()

	t.Run("folds sales and expenses over the inclusive day", func(t *testing.T) {
		f := newReportFixture()
		start := time.Date(2025, 3, 10, 0, 0, 0, 0, ist)
		end := time.Date(2025, 3, 10, 23, 59, 59, int(999*time.Millisecond), ist)

		f.sales.On("FindCreatedBetween", ctx, f.tenantID, start, end).Return([]trade.Sale{
			saleOf(t, f.tenantID, 101, trade.PaymentMethodCash, 200),
			saleOf(t, f.tenantID, 102, trade.PaymentMethodUdhaar, 150),
		}, nil)
		exp, _ := finance.NewExpense(f.tenantID, "Tea", decimal.NewFromInt(50), start)
		f.expenses.On("FindDatedBetween", ctx, f.tenantID, start, end, true).Return([]finance.Expense{*exp}, nil)

		resp, err := f.service.Daily(ctx, f.tenantID, "2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, "350", resp.TotalSales.String())
		assert.Equal(t, "50", resp.TotalExpenses.String())
		assert.Equal(t, "300", resp.NetProfit.String())
		assert.Equal(t, 2, resp.SalesCount)
		assert.Len(t, resp.SalesByMethod, 4)
		assert.Equal(t, "0", resp.SalesByMethod["UPI"].String())
		assert.Equal(t, "150", resp.SalesByMethod["Udhaar"].String())
	})

	t.Run("empty day has every method at zero", func(t *testing.T) {
		f := newReportFixture()
		f.sales.On("FindCreatedBetween", ctx, f.tenantID, mock.Anything, mock.Anything).Return([]trade.Sale{}, nil)
		f.expenses.On("FindDatedBetween", ctx, f.tenantID, mock.Anything, mock.Anything, true).Return([]finance.Expense{}, nil)

		resp, err := f.service.Daily(ctx, f.tenantID, "")
		require.NoError(t, err)
		assert.Equal(t, 0, resp.SalesCount)
		for _, m := range []string{"Cash", "UPI", "Card", "Udhaar"} {
			v, ok := resp.SalesByMethod[m]
			assert.True(t, ok, m)
			assert.True(t, v.IsZero(), m)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		f := newReportFixture()
		_, err := f.service.Daily(ctx, f.tenantID, "2025-13-40")
		assert.ErrorIs(t, err, finance.ErrInvalidDate)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newReportFixture()
		f.sales.On("FindCreatedBetween", ctx, f.tenantID, mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
		_, err := f.service.Daily(ctx, f.tenantID, "2025-03-10")
		assert.Error(t, err)
	})
}

func TestReportService_Export(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture()
	sales := []trade.Sale{saleOf(t, f.tenantID, 101, trade.PaymentMethodCard, 99)}
	f.sales.On("FindCreatedBetween", ctx, f.tenantID, mock.Anything, mock.Anything).Return(sales, nil)
	f.expenses.On("FindDatedBetween", ctx, f.tenantID, mock.Anything, mock.Anything, true).Return([]finance.Expense{}, nil)

	user := &identity.User{BusinessInfo: identity.BusinessInfo{Name: "sharma kirana"}}
	f.users.On("FindByID", ctx, f.tenantID).Return(user, nil)
	f.renderer.On("Render", "sharma kirana", mock.MatchedBy(func(r *finance.DailyReport) bool {
		return r.SalesCount == 1
	}), sales).Return([]byte("xlsx"), nil)
	f.renderer.On("FileName", mock.Anything).Return("daily-report-2025-03-10.xlsx")
	f.renderer.On("ContentType").Return("application/test")

	file, err := f.service.Export(ctx, f.tenantID, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "daily-report-2025-03-10.xlsx", file.FileName)
	assert.Equal(t, "application/test", file.ContentType)
	assert.Equal(t, []byte("xlsx"), file.Data)
}
