package payment

import (
	"context"
	"encoding/json"

	"github.com/vyapar/backend/internal/domain/finance"
)

// UnavailableGateway stands in when no payment provider is configured
type UnavailableGateway struct{}

// CreateOrder always fails with finance.ErrGatewayUnavailable
func (UnavailableGateway) CreateOrder(context.Context, finance.OrderRequest) (json.RawMessage, error) {
	return nil, finance.ErrGatewayUnavailable
}

var _ finance.OrderGateway = UnavailableGateway{}
