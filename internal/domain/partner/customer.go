package partner

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/shared"
)

// Customer is a credit ("Udhaar") account. Phone is unique per tenant.
// OutstandingBalance is a running total maintained by credit sales and
// payments; it is not derived from sale history.
type Customer struct {
	shared.TenantAggregateRoot
	Name               string
	Phone              string
	OutstandingBalance decimal.Decimal
}

// Errors raised by the partner context
var (
	ErrCustomerNotFound = shared.NewDomainError("CUSTOMER_NOT_FOUND", "Customer not found or you do not have permission.")
	ErrInvalidAmount    = shared.NewDomainError("INVALID_AMOUNT", "Amount must be greater than zero")
)

// NewCustomer creates a customer with an opening balance
func NewCustomer(tenantID uuid.UUID, name, phone string, opening decimal.Decimal) (*Customer, error) {
	name = strings.TrimSpace(name)
	phone = NormalizePhone(phone)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name is required")
	}
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Customer phone is required")
	}

	return &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Phone:               phone,
		OutstandingBalance:  opening,
	}, nil
}

// NormalizePhone strips surrounding whitespace so that the same number
// typed twice maps to the same customer
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// ValidatePaymentAmount checks an amount received against a customer's dues
func ValidatePaymentAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
