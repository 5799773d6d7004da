package finance

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/finance"
	"github.com/vyapar/backend/internal/domain/trade"
)

// CreateExpenseRequest records money spent. Date accepts RFC 3339 or
// YYYY-MM-DD and defaults to now.
type CreateExpenseRequest struct {
	Description string           `json:"description" binding:"required,max=500" example:"Tea for staff"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"120"`
	Date        string           `json:"date" example:"2025-01-15"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"_id" swaggertype:"string" format:"uuid"`
	TenantID    uuid.UUID       `json:"user" swaggertype:"string" format:"uuid"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToExpenseResponse converts a domain expense to its response
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		TenantID:    e.TenantID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// DailyReportResponse is the day summary shown on the dashboard
type DailyReportResponse struct {
	TotalSales    decimal.Decimal            `json:"totalSales" swaggertype:"number"`
	TotalExpenses decimal.Decimal            `json:"totalExpenses" swaggertype:"number"`
	NetProfit     decimal.Decimal            `json:"netProfit" swaggertype:"number"`
	SalesCount    int                        `json:"salesCount"`
	SalesByMethod map[string]decimal.Decimal `json:"salesByMethod" swaggertype:"object,number"`
}

// ToDailyReportResponse converts a folded report to its response
func ToDailyReportResponse(r *finance.DailyReport) DailyReportResponse {
	byMethod := make(map[string]decimal.Decimal, len(r.SalesByMethod))
	for _, m := range trade.AllPaymentMethods() {
		byMethod[m.String()] = r.SalesByMethod[m]
	}
	return DailyReportResponse{
		TotalSales:    r.TotalSales,
		TotalExpenses: r.TotalExpenses,
		NetProfit:     r.NetProfit,
		SalesCount:    r.SalesCount,
		SalesByMethod: byMethod,
	}
}

// ExportFile is a rendered report ready to download
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// CreateOrderRequest keeps the amount raw so that a rejected value can be echoed back
type CreateOrderRequest struct {
	Amount json.RawMessage `json:"amount" swaggertype:"number" example:"499"`
}

// VerifyPaymentRequest carries the fields the checkout widget returns
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// VerifyPaymentResponse reports the signature check
type VerifyPaymentResponse struct {
	Status string `json:"status" example:"success"`
}
