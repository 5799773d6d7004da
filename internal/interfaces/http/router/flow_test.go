package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	catalogapp "github.com/vyapar/backend/internal/application/catalog"
	financeapp "github.com/vyapar/backend/internal/application/finance"
	identityapp "github.com/vyapar/backend/internal/application/identity"
	partnerapp "github.com/vyapar/backend/internal/application/partner"
	tradeapp "github.com/vyapar/backend/internal/application/trade"
	"github.com/vyapar/backend/internal/infrastructure/auth"
	"github.com/vyapar/backend/internal/infrastructure/config"
	"github.com/vyapar/backend/internal/infrastructure/payment"
	"github.com/vyapar/backend/internal/infrastructure/persistence"
	"github.com/vyapar/backend/internal/infrastructure/report"
	"github.com/vyapar/backend/internal/interfaces/http/handler"
	"github.com/vyapar/backend/internal/interfaces/http/middleware"
)

// shop is a fully wired API over an in-memory SQLite store
type shop struct {
	t      *testing.T
	engine *gin.Engine
}

func newShop(t *testing.T) *shop {
	t.Helper()
	require.NoError(t, middleware.SetupValidator())

	db, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: "sqlite", SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.AutoMigrate())

	log := zap.NewNop()
	users := persistence.NewGormUserRepository(db.DB)
	products := persistence.NewGormProductRepository(db.DB)
	customers := persistence.NewGormCustomerRepository(db.DB)
	sales := persistence.NewGormSaleRepository(db.DB)
	expenses := persistence.NewGormExpenseRepository(db.DB)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "flow-test-secret-at-least-32-chars!!",
		AccessTokenExpiration: time.Hour,
		ResetTokenExpiration:  15 * time.Minute,
		Issuer:                "vyapar-test",
	})

	engine := gin.New()
	engine.Use(middleware.RequestID())
	Mount(engine, Handlers{
		Auth:     handler.NewAuthHandler(identityapp.NewAuthService(users, auth.NewBcryptHasher(bcrypt.MinCost), jwtService, log)),
		Product:  handler.NewProductHandler(catalogapp.NewProductService(products, log)),
		Customer: handler.NewCustomerHandler(partnerapp.NewCustomerService(customers, log)),
		Sale: handler.NewSaleHandler(tradeapp.NewBillingService(
			persistence.NewGormTransactionScope(db.DB), sales, nil, log)),
		Expense: handler.NewExpenseHandler(financeapp.NewExpenseService(expenses, time.UTC, log)),
		Report: handler.NewReportHandler(financeapp.NewReportService(
			sales, expenses, users, report.NewExcelExporter(time.UTC), time.UTC, log)),
		Payment: handler.NewPaymentHandler(financeapp.NewPaymentService(
			payment.UnavailableGateway{}, payment.NewRazorpaySignatureVerifier("secret"), "INR", decimal.NewFromInt(1), nil, log)),
		System: handler.NewSystemHandler(nil),
	}, middleware.JWTAuthMiddleware(jwtService, log), middleware.SpanAttributes())

	return &shop{t: t, engine: engine}
}

func (s *shop) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// signUp registers a shop owner and returns a bearer token
func (s *shop) signUp(email, business string) string {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"email":            email,
		"password":         "kirana@123",
		"securityQuestion": "First school?",
		"securityAnswer":   "DAV",
		"businessInfo":     gin.H{"name": business},
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": "kirana@123"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	login := decode[identityapp.LoginResult](s.t, w)
	assert.Equal(s.t, business, login.BusinessInfo.Name)
	return login.Token
}

func TestShopFlow(t *testing.T) {
	s := newShop(t)
	token := s.signUp("sharma@kirana.in", "Sharma Kirana")

	w := s.do(http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/products", token, gin.H{"name": "Soap", "price": 35, "stock": 10})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	soap := decode[catalogapp.ProductResponse](t, w)

	udhaar := gin.H{
		"items":         []gin.H{{"productId": soap.ID, "name": "Soap", "price": 35, "quantity": 2}},
		"totalAmount":   70,
		"paymentMethod": "Udhaar",
		"customerName":  "Ramesh",
		"customerPhone": "9876543210",
	}
	w = s.do(http.MethodPost, "/api/sales", token, udhaar)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decode[tradeapp.SaleRecordedResponse](t, w)
	assert.Equal(t, int64(101), first.Sale.BillNumber)

	w = s.do(http.MethodPost, "/api/sales", token, gin.H{
		"items":         []gin.H{{"productId": soap.ID, "name": "Soap", "price": 35, "quantity": 1}},
		"totalAmount":   35,
		"paymentMethod": "Cash",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, int64(102), decode[tradeapp.SaleRecordedResponse](t, w).Sale.BillNumber)

	w = s.do(http.MethodGet, "/api/products", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]catalogapp.ProductResponse](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, 7, list[0].Stock)

	w = s.do(http.MethodGet, "/api/customers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	dues := decode[[]partnerapp.CustomerResponse](t, w)
	require.Len(t, dues, 1)
	assert.True(t, decimal.NewFromInt(70).Equal(dues[0].OutstandingBalance))

	w = s.do(http.MethodPost, "/api/customers/"+dues[0].ID.String()+"/pay", token, gin.H{"amount": 70})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = s.do(http.MethodGet, "/api/customers", token, nil)
	assert.Empty(t, decode[[]partnerapp.CustomerResponse](t, w))

	w = s.do(http.MethodPost, "/api/expenses", token, gin.H{"description": "Tea", "amount": 20})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/reports/daily", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	daily := decode[financeapp.DailyReportResponse](t, w)
	assert.Equal(t, 2, daily.SalesCount)
	assert.True(t, decimal.NewFromInt(105).Equal(daily.TotalSales))
	assert.True(t, decimal.NewFromInt(85).Equal(daily.NetProfit))

	w = s.do(http.MethodGet, "/api/reports/daily/export", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	// another shop cannot see the first shop's bills
	other := s.signUp("verma@general.in", "Verma General Store")
	w = s.do(http.MethodGet, "/api/sales/"+first.Sale.ID.String(), other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(http.MethodGet, "/api/sales/"+first.Sale.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestShopFlow_DuplicateRegistrationAndPayments(t *testing.T) {
	s := newShop(t)
	s.signUp("sharma@kirana.in", "Sharma Kirana")

	w := s.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"email":            "SHARMA@kirana.in",
		"password":         "other",
		"securityQuestion": "q",
		"securityAnswer":   "a",
		"businessInfo":     gin.H{"name": "Copy"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/payments/create-order", "", gin.H{"amount": 100})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = s.do(http.MethodPost, "/api/payments/verify", "", gin.H{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  payment.NewRazorpaySignatureVerifier("secret").Sign("order_1", "pay_1"),
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
