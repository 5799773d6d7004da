package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	financeapp "github.com/vyapar/backend/internal/application/finance"
)

const msgCreateOrderFailed = "Server error while creating payment order."

// PaymentHandler bridges the checkout widget to the payment gateway
type PaymentHandler struct {
	BaseHandler
	paymentService *financeapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *financeapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateOrder handles POST /api/payments/create-order and relays the
// gateway's order document as is
// @Summary      Create a payment order
// @Description  Create a Razorpay order and return the gateway's order document unchanged
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body financeapp.CreateOrderRequest true "Amount in rupees"
// @Success      200 {object} object
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/payments/create-order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req financeapp.CreateOrderRequest
	if !h.bindJSON(c, &req) {
		return
	}
	order, err := h.paymentService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, msgCreateOrderFailed)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", order)
}

// Verify handles POST /api/payments/verify. A body that cannot be read is
// treated as a failed verification.
// @Summary      Verify a payment
// @Description  Check the checkout signature for an order and payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body financeapp.VerifyPaymentRequest true "Checkout result"
// @Success      200 {object} financeapp.VerifyPaymentResponse
// @Failure      400 {object} financeapp.VerifyPaymentResponse
// @Router       /api/payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req financeapp.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, financeapp.VerifyPaymentResponse{Status: financeapp.VerifyStatusFailure})
		return
	}
	result := h.paymentService.Verify(c.Request.Context(), req)
	status := http.StatusOK
	if result.Status != financeapp.VerifyStatusSuccess {
		status = http.StatusBadRequest
	}
	c.JSON(status, result)
}
