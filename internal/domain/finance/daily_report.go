package finance

import (
	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/trade"
)

// DailyReport summarises one day of trading
type DailyReport struct {
	Window        DayWindow
	TotalSales    decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	SalesCount    int
	SalesByMethod map[trade.PaymentMethod]decimal.Decimal
}

// BuildDailyReport folds the day's sales and expenses into totals.
// Every payment method is present in SalesByMethod, zero when unused.
func BuildDailyReport(window DayWindow, sales []trade.Sale, expenses []Expense) *DailyReport {
	byMethod := make(map[trade.PaymentMethod]decimal.Decimal, 4)
	for _, m := range trade.AllPaymentMethods() {
		byMethod[m] = decimal.Zero
	}

	totalSales := decimal.Zero
	for _, s := range sales {
		totalSales = totalSales.Add(s.TotalAmount)
		if sum, ok := byMethod[s.PaymentMethod]; ok {
			byMethod[s.PaymentMethod] = sum.Add(s.TotalAmount)
		}
	}

	totalExpenses := decimal.Zero
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	return &DailyReport{
		Window:        window,
		TotalSales:    totalSales,
		TotalExpenses: totalExpenses,
		NetProfit:     totalSales.Sub(totalExpenses),
		SalesCount:    len(sales),
		SalesByMethod: byMethod,
	}
}
