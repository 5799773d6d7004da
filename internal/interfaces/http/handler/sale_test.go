package handler

import (
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

	tradeapp "github.com/vyapar/backend/internal/application/trade"
	"github.com/vyapar/backend/internal/domain/partner"
	"github.com/vyapar/backend/internal/domain/shared"
	"github.com/vyapar/backend/internal/domain/trade"
	"github.com/vyapar/backend/internal/interfaces/http/dto"
)

type saleFixture struct {
	tenantID  uuid.UUID
	sales     *MockSaleRepository
	products  *MockProductRepository
	customers *MockCustomerRepository
	bills     *MockBillNumberAllocator
	router    *gin.Engine
}

func newSaleFixture() *saleFixture {
	f := &saleFixture{
		tenantID:  uuid.New(),
		sales:     new(MockSaleRepository),
		products:  new(MockProductRepository),
		customers: new(MockCustomerRepository),
		bills:     new(MockBillNumberAllocator),
	}
	scope := tradeapp.NewNoOpTransactionScope(f.sales, f.products, f.customers, f.bills)
	h := NewSaleHandler(tradeapp.NewBillingService(scope, f.sales, nil, zap.NewNop()))
	f.router = newTenantRouter(f.tenantID)
	f.router.POST("/api/sales", h.Create)
	f.router.GET("/api/sales/:id", h.Get)
	return f
}

func TestSaleHandler_Create_Cash(t *testing.T) {
	f := newSaleFixture()
	productID := uuid.New()
	f.bills.On("Next", mock.Anything, f.tenantID).Return(int64(101), nil)
	f.sales.On("Create", mock.Anything, mock.AnythingOfType("*trade.Sale")).Return(nil)
	f.products.On("DecrementStock", mock.Anything, f.tenantID, productID, 3).Return(true, nil)

	body := `{
		"items": [{"productId": "` + productID.String() + `", "name": "Soap", "price": 35, "quantity": 3}],
		"totalAmount": 105,
		"paymentMethod": "Cash"
	}`
	w := doJSON(f.router, http.MethodPost, "/api/sales", body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	result := decodeBody[tradeapp.SaleRecordedResponse](t, w)
	assert.Equal(t, tradeapp.SaleRecordedMessage, result.Message)
	assert.Equal(t, int64(101), result.Sale.BillNumber)
	assert.Equal(t, "Cash", result.Sale.PaymentMethod)
	assert.True(t, dec("105").Equal(result.Sale.TotalAmount))
	f.customers.AssertNotCalled(t, "AddCredit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.products.AssertExpectations(t)
}

func TestSaleHandler_Create_Udhaar(t *testing.T) {
	f := newSaleFixture()
	f.bills.On("Next", mock.Anything, f.tenantID).Return(int64(102), nil)
	f.sales.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.products.On("DecrementStock", mock.Anything, f.tenantID, mock.Anything, 1).Return(false, nil)
	f.customers.On("AddCredit", mock.Anything, f.tenantID, "Ramesh", "9876543210", mock.Anything).
		Return(&partner.Customer{Name: "Ramesh"}, nil)

	body := `{
		"items": [{"productId": "` + uuid.NewString() + `", "name": "Oil", "price": 180, "quantity": 1}],
		"totalAmount": 180,
		"paymentMethod": "Udhaar",
		"customerName": "Ramesh",
		"customerPhone": "9876543210"
	}`
	w := doJSON(f.router, http.MethodPost, "/api/sales", body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	f.customers.AssertExpectations(t)
}

func TestSaleHandler_Create_Rejected(t *testing.T) {
	item := `{"productId": "` + uuid.NewString() + `", "name": "Oil", "price": 180, "quantity": 1}`
	tests := []struct {
		name string
		body string
	}{
		{"empty cart", `{"items": [], "totalAmount": 0, "paymentMethod": "Cash"}`},
		{"unknown method", `{"items": [` + item + `], "totalAmount": 180, "paymentMethod": "Cheque"}`},
		{"zero quantity", `{"items": [{"name": "Oil", "price": 1, "quantity": 0}], "totalAmount": 0, "paymentMethod": "Cash"}`},
		{"negative total", `{"items": [` + item + `], "totalAmount": -1, "paymentMethod": "Cash"}`},
		{"udhaar without customer", `{"items": [` + item + `], "totalAmount": 180, "paymentMethod": "Udhaar"}`},
		{"malformed", `{"items":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSaleFixture()
			w := doJSON(f.router, http.MethodPost, "/api/sales", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			f.bills.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
		})
	}
}

func TestSaleHandler_Create_StorageFailure(t *testing.T) {
	f := newSaleFixture()
	f.bills.On("Next", mock.Anything, f.tenantID).Return(int64(103), nil)
	f.sales.On("Create", mock.Anything, mock.Anything).
		Return(shared.NewDomainError("DUPLICATE_BILL_NUMBER", "Bill number already used"))

	body := `{"items": [{"name": "Oil", "price": 180, "quantity": 1}], "totalAmount": 180, "paymentMethod": "UPI"}`
	w := doJSON(f.router, http.MethodPost, "/api/sales", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, msgCreateSaleFailed, decodeErr(t, w).Message)

	f = newSaleFixture()
	f.bills.On("Next", mock.Anything, f.tenantID).Return(int64(0), errors.New("counter down"))
	w = doJSON(f.router, http.MethodPost, "/api/sales", body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSaleHandler_Get(t *testing.T) {
	f := newSaleFixture()
	sale, err := trade.NewSale(f.tenantID, 101, trade.SaleDraft{
		Items:         []trade.SaleItem{{Name: "Soap", Price: dec("35"), Quantity: 1}},
		TotalAmount:   dec("35"),
		PaymentMethod: trade.PaymentMethod("Card"),
	}, time.Now())
	require.NoError(t, err)
	f.sales.On("FindByIDForTenant", mock.Anything, f.tenantID, sale.ID).Return(sale, nil)
	f.sales.On("FindByIDForTenant", mock.Anything, f.tenantID, mock.Anything).Return(nil, shared.ErrNotFound)

	w := doJSON(f.router, http.MethodGet, "/api/sales/"+sale.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(101), decodeBody[tradeapp.SaleResponse](t, w).BillNumber)

	w = doJSON(f.router, http.MethodGet, "/api/sales/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeErr(t, w).Code)
}
