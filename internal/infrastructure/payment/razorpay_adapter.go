package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/domain/finance"
)

const razorpayMaxResponseSize = 1 << 20

// RazorpayAdapter implements finance.OrderGateway against the Razorpay Orders API
type RazorpayAdapter struct {
	config     *RazorpayConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewRazorpayAdapter creates a new Razorpay adapter
func NewRazorpayAdapter(config *RazorpayConfig, logger *zap.Logger) (*RazorpayAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RazorpayAdapter{
		config:     config,
		httpClient: config.httpClient(),
		logger:     logger.Named("razorpay"),
	}, nil
}

type razorpayOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type razorpayErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder posts to /v1/orders and returns the order document verbatim
func (a *RazorpayAdapter) CreateOrder(ctx context.Context, req finance.OrderRequest) (json.RawMessage, error) {
	body, err := json.Marshal(razorpayOrderRequest{
		Amount:   req.AmountMinor,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("razorpay: failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.baseURL()+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("razorpay: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(a.config.KeyID, a.config.KeySecret)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", finance.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, razorpayMaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("razorpay: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr razorpayErrorResponse
		_ = json.Unmarshal(respBody, &apiErr)
		a.logger.Warn("Order creation rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("code", apiErr.Error.Code),
			zap.String("description", apiErr.Error.Description),
		)
		return nil, fmt.Errorf("%w: HTTP %d", finance.ErrGatewayRequestFailed, resp.StatusCode)
	}

	if !json.Valid(respBody) {
		return nil, fmt.Errorf("%w: malformed order response", finance.ErrGatewayRequestFailed)
	}
	return json.RawMessage(respBody), nil
}

var _ finance.OrderGateway = (*RazorpayAdapter)(nil)
