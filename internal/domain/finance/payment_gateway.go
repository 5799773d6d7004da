package finance

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/shared"
)

// Gateway errors
var (
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")
	ErrGatewayRequestFailed = errors.New("payment gateway request failed")
	ErrInvalidOrderAmount   = shared.NewDomainError("INVALID_AMOUNT", "Invalid amount.")
)

// OrderRequest asks the gateway for a new order. Amount is in minor units (paise).
type OrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
}

// ToMinorUnits converts a major-unit amount to minor units, rounding half away from zero
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// OrderGateway creates payment orders on an external gateway.
// The returned document is the gateway's order object, passed through verbatim.
type OrderGateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (json.RawMessage, error)
}

// SignatureVerifier checks a gateway callback signature
type SignatureVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}
