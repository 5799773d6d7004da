package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/vyapar/backend/internal/domain/finance"
)

// RazorpaySignatureVerifier checks checkout callback signatures:
// hex(HMAC-SHA256(key_secret, order_id + "|" + payment_id)).
type RazorpaySignatureVerifier struct {
	secret []byte
}

// NewRazorpaySignatureVerifier creates a verifier for the given key secret
func NewRazorpaySignatureVerifier(keySecret string) *RazorpaySignatureVerifier {
	return &RazorpaySignatureVerifier{secret: []byte(keySecret)}
}

// Sign returns the expected signature for an order/payment pair
func (v *RazorpaySignatureVerifier) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares the signature in constant time
func (v *RazorpaySignatureVerifier) Verify(orderID, paymentID, signature string) bool {
	if len(v.secret) == 0 {
		return false
	}
	expected := v.Sign(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

var _ finance.SignatureVerifier = (*RazorpaySignatureVerifier)(nil)
