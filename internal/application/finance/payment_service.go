package finance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/domain/finance"
	"github.com/vyapar/backend/internal/domain/shared"
	"github.com/vyapar/backend/internal/infrastructure/telemetry"
)

// Verification outcomes
const (
	VerifyStatusSuccess = "success"
	VerifyStatusFailure = "failure"
)

// PaymentService bridges checkout to the payment gateway. It stores nothing.
type PaymentService struct {
	gateway   finance.OrderGateway
	verifier  finance.SignatureVerifier
	currency  string
	minAmount decimal.Decimal
	metrics   *telemetry.POSMetrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewPaymentService creates a new PaymentService. metrics may be nil.
func NewPaymentService(
	gateway finance.OrderGateway,
	verifier finance.SignatureVerifier,
	currency string,
	minAmount decimal.Decimal,
	metrics *telemetry.POSMetrics,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		gateway:   gateway,
		verifier:  verifier,
		currency:  currency,
		minAmount: minAmount,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateOrder validates the amount and opens a gateway order. The gateway's
// order document is returned untouched.
func (s *PaymentService) CreateOrder(ctx context.Context, req CreateOrderRequest) (json.RawMessage, error) {
	amount, err := s.parseAmount(req.Amount)
	if err != nil {
		s.metrics.RecordPaymentOrder(ctx, telemetry.OutcomeFailure)
		return nil, err
	}

	order := finance.OrderRequest{
		AmountMinor: finance.ToMinorUnits(amount),
		Currency:    s.currency,
		Receipt:     "receipt_order_" + strconv.FormatInt(s.now().UnixMilli(), 10),
	}
	doc, err := s.gateway.CreateOrder(ctx, order)
	if err != nil {
		s.metrics.RecordPaymentOrder(ctx, telemetry.OutcomeError)
		s.logger.Error("Payment order failed",
			zap.Int64("amount_minor", order.AmountMinor),
			zap.String("receipt", order.Receipt),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create payment order: %w", err)
	}

	s.metrics.RecordPaymentOrder(ctx, telemetry.OutcomeSuccess)
	s.logger.Info("Payment order created",
		zap.Int64("amount_minor", order.AmountMinor),
		zap.String("receipt", order.Receipt),
	)
	return doc, nil
}

// Verify checks the signature returned by the checkout widget
func (s *PaymentService) Verify(ctx context.Context, req VerifyPaymentRequest) VerifyPaymentResponse {
	ok := s.verifier.Verify(req.OrderID, req.PaymentID, req.Signature)
	s.metrics.RecordPaymentVerification(ctx, ok)
	if !ok {
		s.logger.Warn("Payment signature mismatch",
			zap.String("order_id", req.OrderID),
			zap.String("payment_id", req.PaymentID),
		)
		return VerifyPaymentResponse{Status: VerifyStatusFailure}
	}
	return VerifyPaymentResponse{Status: VerifyStatusSuccess}
}

// parseAmount accepts only a JSON number at or above the minimum
func (s *PaymentService) parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && (raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
		if amount, err := decimal.NewFromString(string(raw)); err == nil {
			if amount.GreaterThanOrEqual(s.minAmount) {
				return amount, nil
			}
			return decimal.Zero, s.invalidAmount(amount.String())
		}
	}
	return decimal.Zero, s.invalidAmount(echoRaw(raw))
}

func (s *PaymentService) invalidAmount(received string) error {
	return shared.NewDomainError(finance.ErrInvalidOrderAmount.Code,
		fmt.Sprintf("Invalid amount. Amount must be at least ₹%s. Received: %s", s.minAmount.String(), received))
}

// echoRaw renders a rejected JSON value the way a string template would
func echoRaw(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "undefined"
	}
	var str string
	if raw[0] == '"' && json.Unmarshal(raw, &str) == nil {
		return str
	}
	if raw[0] == '{' {
		return "[object Object]"
	}
	return string(raw)
}
