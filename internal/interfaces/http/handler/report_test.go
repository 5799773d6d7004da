package handler

import (
	"bytes"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	financeapp "github.com/vyapar/backend/internal/application/finance"
	"github.com/vyapar/backend/internal/domain/finance"
	"github.com/vyapar/backend/internal/domain/identity"
	"github.com/vyapar/backend/internal/domain/trade"
	"github.com/vyapar/backend/internal/infrastructure/report"
)

type reportFixture struct {
	tenantID uuid.UUID
	sales    *MockSaleRepository
	expenses *MockExpenseRepository
	users    *MockUserRepository
	router   *gin.Engine
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		tenantID: uuid.New(),
		sales:    new(MockSaleRepository),
		expenses: new(MockExpenseRepository),
		users:    new(MockUserRepository),
	}
	svc := financeapp.NewReportService(f.sales, f.expenses, f.users, report.NewExcelExporter(ist), ist, zap.NewNop())
	h := NewReportHandler(svc)
	f.router = newTenantRouter(f.tenantID)
	f.router.GET("/api/reports/daily", h.Daily)
	f.router.GET("/api/reports/daily/export", h.Export)
	return f
}

func (f *reportFixture) sale(t *testing.T, bill int64, method, total string) trade.Sale {
	t.Helper()
	s, err := trade.NewSale(f.tenantID, bill, trade.SaleDraft{
		Items:         []trade.SaleItem{{Name: "Item", Price: dec(total), Quantity: 1}},
		TotalAmount:   dec(total),
		PaymentMethod: trade.PaymentMethod(method),
		CustomerName:  "Ramesh",
		CustomerPhone: "9876543210",
	}, time.Date(2025, 3, 14, 11, 0, 0, 0, ist))
	require.NoError(t, err)
	return *s
}

func (f *reportFixture) stubDay(t *testing.T) {
	sales := []trade.Sale{f.sale(t, 101, "Cash", "300"), f.sale(t, 102, "Udhaar", "200")}
	rent, err := finance.NewExpense(f.tenantID, "Rent", dec("150"), time.Date(2025, 3, 14, 9, 0, 0, 0, ist))
	require.NoError(t, err)
	f.sales.On("FindCreatedBetween", mock.Anything, f.tenantID, mock.Anything, mock.Anything).Return(sales, nil)
	f.expenses.On("FindDatedBetween", mock.Anything, f.tenantID, mock.Anything, mock.Anything, true).
		Return([]finance.Expense{*rent}, nil)
}

func TestReportHandler_Daily(t *testing.T) {
	f := newReportFixture()
	f.stubDay(t)

	w := doJSON(f.router, http.MethodGet, "/api/reports/daily?date=2025-03-14", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	r := decodeBody[financeapp.DailyReportResponse](t, w)
	assert.True(t, dec("500").Equal(r.TotalSales))
	assert.True(t, dec("150").Equal(r.TotalExpenses))
	assert.True(t, dec("350").Equal(r.NetProfit))
	assert.Equal(t, 2, r.SalesCount)
	require.Len(t, r.SalesByMethod, 4)
	assert.True(t, r.SalesByMethod["UPI"].IsZero())
	assert.True(t, dec("200").Equal(r.SalesByMethod["Udhaar"]))
}

func TestReportHandler_Daily_Failures(t *testing.T) {
	f := newReportFixture()
	w := doJSON(f.router, http.MethodGet, "/api/reports/daily?date=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.sales.On("FindCreatedBetween", mock.Anything, f.tenantID, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))
	w = doJSON(f.router, http.MethodGet, "/api/reports/daily?date=2025-03-14", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, msgReportFailed, decodeErr(t, w).Message)
}

func TestReportHandler_Export(t *testing.T) {
	f := newReportFixture()
	f.stubDay(t)
	owner, err := identity.NewUser("owner@shop.in", "h", "q", "a", identity.BusinessInfo{Name: "Sharma Kirana"})
	require.NoError(t, err)
	f.users.On("FindByID", mock.Anything, f.tenantID).Return(owner, nil)

	w := doJSON(f.router, http.MethodGet, "/api/reports/daily/export?date=2025-03-14", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}
