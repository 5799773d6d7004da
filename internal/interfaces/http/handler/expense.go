package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	financeapp "github.com/vyapar/backend/internal/application/finance"
)

// ExpenseHandler handles expense entry and the per-day list
type ExpenseHandler struct {
	BaseHandler
	expenseService *financeapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *financeapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles POST /api/expenses
// @Summary      Record an expense
// @Description  Record money spent; the date defaults to now
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body financeapp.CreateExpenseRequest true "Expense"
// @Success      201 {object} financeapp.ExpenseResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	var req financeapp.CreateExpenseRequest
	if !h.bindJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// List handles GET /api/expenses?date=YYYY-MM-DD
// @Summary      List expenses
// @Description  List the expenses of one day, today when no date is given
// @Tags         expenses
// @Produce      json
// @Param        date query string false "Day as YYYY-MM-DD"
// @Success      200 {array} financeapp.ExpenseResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	expenses, err := h.expenseService.ListByDay(c.Request.Context(), tenantID, c.Query("date"))
	if err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusOK, expenses)
}
