package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/shared"
)

// FirstBillNumber is assigned to a tenant's first sale
const FirstBillNumber int64 = 101

// SaleItem is a line captured at checkout. Name and Price are snapshots
// taken at the time of sale, not live references to the product.
type SaleItem struct {
	ProductID uuid.UUID
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// LineTotal returns price times quantity
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale is an immutable record of one checkout
type Sale struct {
	shared.TenantAggregateRoot
	BillNumber    int64
	Items         []SaleItem
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	CustomerName  string
	CustomerPhone string
	Discount      decimal.Decimal
	TaxRate       decimal.Decimal
}

// SaleDraft holds checkout input before a bill number is assigned
type SaleDraft struct {
	Items         []SaleItem
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	CustomerName  string
	CustomerPhone string
	Discount      decimal.Decimal
	TaxRate       decimal.Decimal
}

// Errors raised by the trade context
var (
	ErrEmptyCart            = shared.NewDomainError("EMPTY_CART", "Sale must contain at least one item")
	ErrInvalidQuantity      = shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be at least 1")
	ErrInvalidItemPrice     = shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
	ErrInvalidTotal         = shared.NewDomainError("INVALID_TOTAL", "Total amount cannot be negative")
	ErrInvalidDiscount      = shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	ErrInvalidTaxRate       = shared.NewDomainError("INVALID_TAX_RATE", "Tax rate cannot be negative")
	ErrInvalidPaymentMethod = shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method must be one of Cash, UPI, Card, Udhaar")
	ErrCustomerRequired     = shared.NewDomainError("CUSTOMER_REQUIRED", "Customer name and phone are required for Udhaar sales")
)

// Validate checks the draft. The total is trusted as given and is not
// reconciled against the lines.
func (d *SaleDraft) Validate() error {
	if len(d.Items) == 0 {
		return ErrEmptyCart
	}
	for _, item := range d.Items {
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if item.Price.IsNegative() {
			return ErrInvalidItemPrice
		}
	}
	if d.TotalAmount.IsNegative() {
		return ErrInvalidTotal
	}
	if d.Discount.IsNegative() {
		return ErrInvalidDiscount
	}
	if d.TaxRate.IsNegative() {
		return ErrInvalidTaxRate
	}
	if !d.PaymentMethod.IsValid() {
		return ErrInvalidPaymentMethod
	}
	if d.PaymentMethod.IsCredit() &&
		(strings.TrimSpace(d.CustomerName) == "" || strings.TrimSpace(d.CustomerPhone) == "") {
		return ErrCustomerRequired
	}
	return nil
}

// NewSale turns a validated draft into a sale with the given bill number
func NewSale(tenantID uuid.UUID, billNumber int64, draft SaleDraft, at time.Time) (*Sale, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if billNumber < 1 {
		return nil, shared.NewDomainError("INVALID_BILL_NUMBER", "Bill number must be positive")
	}

	items := make([]SaleItem, len(draft.Items))
	copy(items, draft.Items)

	return &Sale{
		TenantAggregateRoot: shared.NewTenantAggregateRootAt(tenantID, at),
		BillNumber:          billNumber,
		Items:               items,
		TotalAmount:         draft.TotalAmount,
		PaymentMethod:       draft.PaymentMethod,
		CustomerName:        strings.TrimSpace(draft.CustomerName),
		CustomerPhone:       strings.TrimSpace(draft.CustomerPhone),
		Discount:            draft.Discount,
		TaxRate:             draft.TaxRate,
	}, nil
}

// Subtotal sums the line totals
func (s *Sale) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range s.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}
