package partner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/domain/partner"
)

// PaymentRecordedMessage accompanies a successful payment
const PaymentRecordedMessage = "Payment recorded successfully"

// CustomerService manages the Udhaar ledger
type CustomerService struct {
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// ListWithDues returns customers who still owe money, ordered by name
func (s *CustomerService) ListWithDues(ctx context.Context, tenantID uuid.UUID) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindWithDues(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list customers with dues: %w", err)
	}
	return ToCustomerResponses(customers), nil
}

// RecordPayment lowers a customer's balance. Overpayment leaves a negative balance.
func (s *CustomerService) RecordPayment(ctx context.Context, tenantID, customerID uuid.UUID, req RecordPaymentRequest) (*PaymentRecordedResponse, error) {
	amount := decimal.Zero
	if req.Amount != nil {
		amount = *req.Amount
	}
	if err := partner.ValidatePaymentAmount(amount); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.ApplyPayment(ctx, tenantID, customerID, amount)
	if err != nil {
		if errors.Is(err, partner.ErrCustomerNotFound) {
			return nil, partner.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("apply payment: %w", err)
	}

	s.logger.Info("Udhaar payment recorded",
		zap.String("tenant_id", tenantID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("amount", amount.String()),
		zap.String("balance", customer.OutstandingBalance.String()),
	)

	return &PaymentRecordedResponse{
		Message:  PaymentRecordedMessage,
		Customer: ToCustomerResponse(customer),
	}, nil
}
