package trade

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/domain/shared"
	"github.com/vyapar/backend/internal/domain/trade"
	"github.com/vyapar/backend/internal/infrastructure/telemetry"
)

// SaleRecordedMessage accompanies a successful checkout
const SaleRecordedMessage = "Sale recorded successfully"

var (
	// ErrCheckoutFailed wraps every storage failure inside the billing transaction
	ErrCheckoutFailed = errors.New("checkout failed")

	// ErrSaleNotFound is returned for absent and foreign sales alike
	ErrSaleNotFound = shared.NewDomainError("NOT_FOUND", "Sale not found or you do not have permission.")
)

// Checkout stages, used for failure metrics and partial-failure logs
const (
	StageBillNumber = "bill_number"
	StageSale       = "sale"
	StageStock      = "stock"
	StageCredit     = "credit"
)

// BillingService records sales. Allocating the bill number, persisting the
// sale, decrementing stock and posting Udhaar credit run through a
// TransactionScope, which decides whether they commit together.
type BillingService struct {
	scope    TransactionScope
	saleRepo trade.SaleRepository
	metrics  *telemetry.POSMetrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewBillingService creates a new BillingService. metrics may be nil.
func NewBillingService(
	scope TransactionScope,
	saleRepo trade.SaleRepository,
	metrics *telemetry.POSMetrics,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		scope:    scope,
		saleRepo: saleRepo,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// checkoutError remembers which stage failed
type checkoutError struct {
	stage string
	err   error
}

func (e *checkoutError) Error() string { return e.stage + ": " + e.err.Error() }
func (e *checkoutError) Unwrap() error { return e.err }

// CreateSale runs the billing transaction for one cart
func (s *BillingService) CreateSale(ctx context.Context, tenantID uuid.UUID, req CreateSaleRequest) (*SaleRecordedResponse, error) {
	started := s.now()
	ctx, span := telemetry.StartServiceSpan(ctx, "BillingService", "CreateSale",
		attribute.String(telemetry.SpanAttrPaymentMethod, req.PaymentMethod),
		attribute.Int(telemetry.SpanAttrItemCount, len(req.Items)),
	)
	defer span.End()

	draft := req.toDraft()
	if err := draft.Validate(); err != nil {
		s.metrics.ObserveCheckout(ctx, s.now().Sub(started).Seconds(), telemetry.OutcomeFailure)
		return nil, err
	}

	var (
		sale      *trade.Sale
		completed []string
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		completed = completed[:0]

		billNumber, err := repos.BillNumbers().Next(ctx, tenantID)
		if err != nil {
			return &checkoutError{StageBillNumber, err}
		}
		completed = append(completed, StageBillNumber)

		sale, err = trade.NewSale(tenantID, billNumber, draft, s.now())
		if err != nil {
			return err
		}
		if err := repos.Sales().Create(ctx, sale); err != nil {
			return &checkoutError{StageSale, err}
		}
		completed = append(completed, StageSale)

		for _, item := range sale.Items {
			matched, err := repos.Products().DecrementStock(ctx, tenantID, item.ProductID, item.Quantity)
			if err != nil {
				return &checkoutError{StageStock, err}
			}
			if !matched {
				s.logger.Debug("Stock not adjusted for unknown product",
					zap.String("tenant_id", tenantID.String()),
					zap.String("product_id", item.ProductID.String()),
				)
			}
		}
		completed = append(completed, StageStock)

		if sale.PaymentMethod.IsCredit() {
			if _, err := repos.Customers().AddCredit(ctx, tenantID, sale.CustomerName, sale.CustomerPhone, sale.TotalAmount); err != nil {
				return &checkoutError{StageCredit, err}
			}
			completed = append(completed, StageCredit)
		}
		return nil
	})
	elapsed := s.now().Sub(started).Seconds()

	if err != nil {
		telemetry.RecordError(span, err)

		var cerr *checkoutError
		if errors.As(err, &cerr) {
			s.metrics.RecordCheckoutFailure(ctx, cerr.stage)
			s.metrics.ObserveCheckout(ctx, elapsed, telemetry.OutcomeError)
			s.logger.Error("Checkout failed",
				zap.String("tenant_id", tenantID.String()),
				zap.String("stage", cerr.stage),
				zap.Strings("completed", completed),
				zap.Error(cerr.err),
			)
			return nil, fmt.Errorf("%w: %s", ErrCheckoutFailed, cerr)
		}
		s.metrics.ObserveCheckout(ctx, elapsed, telemetry.OutcomeFailure)
		if _, ok := shared.AsDomainError(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("create sale: %w", err)
	}

	span.SetAttributes(
		attribute.Int64(telemetry.SpanAttrBillNumber, sale.BillNumber),
		attribute.String(telemetry.SpanAttrAmount, sale.TotalAmount.String()),
	)
	s.metrics.RecordSale(ctx, sale.PaymentMethod.String(), sale.TotalAmount)
	s.metrics.ObserveCheckout(ctx, elapsed, telemetry.OutcomeSuccess)

	s.logger.Info("Sale recorded",
		zap.String("tenant_id", tenantID.String()),
		zap.Int64("bill_number", sale.BillNumber),
		zap.String("payment_method", sale.PaymentMethod.String()),
		zap.String("total", sale.TotalAmount.String()),
	)

	return &SaleRecordedResponse{
		Message: SaleRecordedMessage,
		Sale:    ToSaleResponse(sale),
	}, nil
}

// GetSale loads one of the tenant's sales, for reprinting a bill
func (s *BillingService) GetSale(ctx context.Context, tenantID, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByIDForTenant(ctx, tenantID, saleID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("find sale: %w", err)
	}
	resp := ToSaleResponse(sale)
	return &resp, nil
}
