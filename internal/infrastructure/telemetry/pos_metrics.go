package telemetry

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when a nil meter is passed to NewPOSMetrics.
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

// POSMetrics tracks checkout and payment activity.
// A nil *POSMetrics is valid and records nothing.
type POSMetrics struct {
	salesTotal           *Counter
	salesAmount          *Counter
	checkoutFailures     *Counter
	checkoutDuration     *Histogram
	paymentOrders        *Counter
	paymentVerifications *Counter
}

// NewPOSMetrics registers the POS instruments on meter.
func NewPOSMetrics(meter metric.Meter) (*POSMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	m := &POSMetrics{}
	var err error

	if m.salesTotal, err = NewCounter(meter,
		"vyapar_sales_total",
		"Number of sales recorded",
		"{sales}",
	); err != nil {
		return nil, err
	}

	if m.salesAmount, err = NewCounter(meter,
		"vyapar_sales_amount_total",
		"Sales value in paise",
		"{paise}",
	); err != nil {
		return nil, err
	}

	if m.checkoutFailures, err = NewCounter(meter,
		"vyapar_checkout_failures_total",
		"Checkouts that did not produce a sale",
		"{checkouts}",
	); err != nil {
		return nil, err
	}

	if m.checkoutDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "vyapar_checkout_duration_seconds",
		Description: "Time spent recording a sale",
		Unit:        "s",
		Boundaries:  HTTPDurationBuckets,
	}); err != nil {
		return nil, err
	}

	if m.paymentOrders, err = NewCounter(meter,
		"vyapar_payment_orders_total",
		"Gateway payment orders requested",
		"{orders}",
	); err != nil {
		return nil, err
	}

	if m.paymentVerifications, err = NewCounter(meter,
		"vyapar_payment_verifications_total",
		"Gateway payment signature checks",
		"{verifications}",
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordSale counts a completed sale and adds its total in paise.
func (m *POSMetrics) RecordSale(ctx context.Context, paymentMethod string, total decimal.Decimal) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{AttrPaymentMethod.String(paymentMethod)}
	m.salesTotal.Inc(ctx, attrs...)
	m.salesAmount.AddN(ctx, total.Shift(2).Round(0).IntPart(), attrs...)
}

// RecordCheckoutFailure counts a checkout that failed at stage.
func (m *POSMetrics) RecordCheckoutFailure(ctx context.Context, stage string) {
	if m == nil {
		return
	}
	m.checkoutFailures.Inc(ctx, attribute.String("stage", stage))
}

// ObserveCheckout records how long a checkout took in seconds.
func (m *POSMetrics) ObserveCheckout(ctx context.Context, seconds float64, outcome string) {
	if m == nil {
		return
	}
	m.checkoutDuration.Observe(ctx, seconds, AttrOutcome.String(outcome))
}

// RecordPaymentOrder counts a create-order attempt.
func (m *POSMetrics) RecordPaymentOrder(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.paymentOrders.Inc(ctx, AttrOutcome.String(outcome))
}

// RecordPaymentVerification counts a signature check.
func (m *POSMetrics) RecordPaymentVerification(ctx context.Context, verified bool) {
	if m == nil {
		return
	}
	outcome := OutcomeFailure
	if verified {
		outcome = OutcomeSuccess
	}
	m.paymentVerifications.Inc(ctx, AttrOutcome.String(outcome))
}
