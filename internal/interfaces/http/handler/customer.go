package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	partnerapp "github.com/vyapar/backend/internal/application/partner"
	"github.com/vyapar/backend/internal/domain/partner"
)

// CustomerHandler handles the Udhaar ledger endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// ListWithDues handles GET /api/customers
// @Summary      List customers with dues
// @Description  List Udhaar customers whose outstanding balance is above zero
// @Tags         customers
// @Produce      json
// @Success      200 {array} partnerapp.CustomerResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers [get]
func (h *CustomerHandler) ListWithDues(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	customers, err := h.customerService.ListWithDues(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// RecordPayment handles POST /api/customers/:id/pay
// @Summary      Record a payment
// @Description  Subtract money received from a customer's outstanding balance
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID"
// @Param        request body partnerapp.RecordPaymentRequest true "Amount received"
// @Success      200 {object} partnerapp.PaymentRecordedResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/customers/{id}/pay [post]
func (h *CustomerHandler) RecordPayment(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	customerID, ok := h.pathID(c, partner.ErrCustomerNotFound)
	if !ok {
		return
	}
	var req partnerapp.RecordPaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.customerService.RecordPayment(c.Request.Context(), tenantID, customerID, req)
	if err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusOK, result)
}
