package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tradeapp "github.com/vyapar/backend/internal/application/trade"
)

const msgCreateSaleFailed = "Server error while creating sale."

// SaleHandler handles checkout
type SaleHandler struct {
	BaseHandler
	billingService *tradeapp.BillingService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(billingService *tradeapp.BillingService) *SaleHandler {
	return &SaleHandler{billingService: billingService}
}

// Create handles POST /api/sales
// @Summary      Record a sale
// @Description  Allocate a bill number, store the bill, reduce stock and book Udhaar credit
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        request body tradeapp.CreateSaleRequest true "Cart and payment method"
// @Success      201 {object} tradeapp.SaleRecordedResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	var req tradeapp.CreateSaleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.billingService.CreateSale(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err, msgCreateSaleFailed)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Get handles GET /api/sales/:id
// @Summary      Get a sale
// @Description  Load a recorded bill for reprinting
// @Tags         sales
// @Produce      json
// @Param        id path string true "Sale ID"
// @Success      200 {object} tradeapp.SaleResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	saleID, ok := h.pathID(c, tradeapp.ErrSaleNotFound)
	if !ok {
		return
	}
	sale, err := h.billingService.GetSale(c.Request.Context(), tenantID, saleID)
	if err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusOK, sale)
}
