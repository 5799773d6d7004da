package payment

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vyapar/backend/internal/infrastructure/config"
)

const razorpayDefaultBaseURL = "https://api.razorpay.com"

// RazorpayConfig contains the credentials for the Razorpay Orders API
type RazorpayConfig struct {
	// KeyID is the public key id, also handed to the checkout widget
	KeyID string
	// KeySecret signs API requests and payment signatures
	KeySecret string
	// BaseURL is the API origin, overridable for tests
	BaseURL string
	// Timeout bounds each API call
	Timeout time.Duration
}

// Errors for configuration validation
var (
	ErrRazorpayMissingKeyID     = errors.New("razorpay: missing key id")
	ErrRazorpayMissingKeySecret = errors.New("razorpay: missing key secret")
)

// NewRazorpayConfig builds the adapter config from application config
func NewRazorpayConfig(cfg config.PaymentConfig) *RazorpayConfig {
	return &RazorpayConfig{
		KeyID:     cfg.KeyID,
		KeySecret: cfg.KeySecret,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
	}
}

// Validate validates the configuration
func (c *RazorpayConfig) Validate() error {
	if c.KeyID == "" {
		return ErrRazorpayMissingKeyID
	}
	if c.KeySecret == "" {
		return ErrRazorpayMissingKeySecret
	}
	return nil
}

func (c *RazorpayConfig) baseURL() string {
	if c.BaseURL == "" {
		return razorpayDefaultBaseURL
	}
	return strings.TrimRight(c.BaseURL, "/")
}

func (c *RazorpayConfig) httpClient() *http.Client {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
