package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/partner"
)

// RecordPaymentRequest is money received against a customer's dues
type RecordPaymentRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"250"`
}

// CustomerResponse represents a credit customer in API responses
type CustomerResponse struct {
	ID                 uuid.UUID       `json:"_id" swaggertype:"string" format:"uuid"`
	TenantID           uuid.UUID       `json:"user" swaggertype:"string" format:"uuid"`
	Name               string          `json:"name"`
	Phone              string          `json:"phone"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance" swaggertype:"number"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// PaymentRecordedResponse is returned after a payment is applied
type PaymentRecordedResponse struct {
	Message  string           `json:"message"`
	Customer CustomerResponse `json:"customer"`
}

// ToCustomerResponse converts a domain customer to its response
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                 c.ID,
		TenantID:           c.TenantID,
		Name:               c.Name,
		Phone:              c.Phone,
		OutstandingBalance: c.OutstandingBalance,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = ToCustomerResponse(&customers[i])
	}
	return out
}
