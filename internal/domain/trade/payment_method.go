package trade

// PaymentMethod is how a sale was settled
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "Cash"
	PaymentMethodUPI    PaymentMethod = "UPI"
	PaymentMethodCard   PaymentMethod = "Card"
	PaymentMethodUdhaar PaymentMethod = "Udhaar"
)

// AllPaymentMethods lists every method in display order
func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodUPI,
		PaymentMethodCard,
		PaymentMethodUdhaar,
	}
}

// IsValid reports whether m is a known method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodCard, PaymentMethodUdhaar:
		return true
	}
	return false
}

// IsCredit reports whether the sale is deferred to the customer's ledger
func (m PaymentMethod) IsCredit() bool {
	return m == PaymentMethodUdhaar
}

// SettledByGateway reports whether the method is collected through the
// external payment gateway before the sale is recorded
func (m PaymentMethod) SettledByGateway() bool {
	return m == PaymentMethodUPI || m == PaymentMethodCard
}

func (m PaymentMethod) String() string {
	return string(m)
}
