package trade

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() SaleDraft {
	return SaleDraft{
		Items: []SaleItem{
			{ProductID: uuid.New(), Name: "Rice 1kg", Price: decimal.NewFromInt(100), Quantity: 2},
		},
		TotalAmount:   decimal.NewFromInt(200),
		PaymentMethod: PaymentMethodCash,
		Discount:      decimal.NewFromInt(10),
		TaxRate:       decimal.NewFromInt(5),
	}
}

func TestSaleDraft_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *SaleDraft)
		wantErr error
	}{
		{"valid cash sale", func(d *SaleDraft) {}, nil},
		{"empty cart", func(d *SaleDraft) { d.Items = nil }, ErrEmptyCart},
		{"zero quantity", func(d *SaleDraft) { d.Items[0].Quantity = 0 }, ErrInvalidQuantity},
		{"negative price", func(d *SaleDraft) { d.Items[0].Price = decimal.NewFromInt(-1) }, ErrInvalidItemPrice},
		{"negative total", func(d *SaleDraft) { d.TotalAmount = decimal.NewFromInt(-1) }, ErrInvalidTotal},
		{"negative discount", func(d *SaleDraft) { d.Discount = decimal.NewFromInt(-1) }, ErrInvalidDiscount},
		{"negative tax", func(d *SaleDraft) { d.TaxRate = decimal.NewFromInt(-1) }, ErrInvalidTaxRate},
		{"unknown method", func(d *SaleDraft) { d.PaymentMethod = "Cheque" }, ErrInvalidPaymentMethod},
		{"udhaar without customer", func(d *SaleDraft) { d.PaymentMethod = PaymentMethodUdhaar }, ErrCustomerRequired},
		{"udhaar with customer", func(d *SaleDraft) {
			d.PaymentMethod = PaymentMethodUdhaar
			d.CustomerName = "Ramesh"
			d.CustomerPhone = "9876543210"
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewSale(t *testing.T) {
	tenantID := uuid.New()
	at := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	draft := validDraft()

	sale, err := NewSale(tenantID, FirstBillNumber, draft, at)
	require.NoError(t, err)

	assert.Equal(t, tenantID, sale.TenantID)
	assert.Equal(t, int64(101), sale.BillNumber)
	assert.Equal(t, at, sale.CreatedAt)
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(200)))
	assert.True(t, sale.Subtotal().Equal(decimal.NewFromInt(200)))

	// items are copied so the draft cannot mutate the snapshot
	draft.Items[0].Name = "changed"
	assert.Equal(t, "Rice 1kg", sale.Items[0].Name)

	_, err = NewSale(tenantID, 0, validDraft(), at)
	assert.Error(t, err)
}

func TestPaymentMethod(t *testing.T) {
	assert.Len(t, AllPaymentMethods(), 4)
	for _, m := range AllPaymentMethods() {
		assert.True(t, m.IsValid(), m)
	}
	assert.False(t, PaymentMethod("cash").IsValid())
	assert.True(t, PaymentMethodUdhaar.IsCredit())
	assert.True(t, PaymentMethodUPI.SettledByGateway())
	assert.True(t, PaymentMethodCard.SettledByGateway())
	assert.False(t, PaymentMethodCash.SettledByGateway())
}
