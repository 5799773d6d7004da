package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/vyapar/backend/internal/application/catalog"
	"github.com/vyapar/backend/internal/domain/catalog"
	"github.com/vyapar/backend/internal/interfaces/http/dto"
)

// MsgProductDeleted is returned by a successful delete
const MsgProductDeleted = "Product deleted successfully."

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /api/products
// @Summary      List products
// @Description  List the shop's products sorted by name
// @Tags         products
// @Produce      json
// @Success      200 {array} catalogapp.ProductResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	products, err := h.productService.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Create handles POST /api/products
// @Summary      Create a product
// @Description  Add a product to the shop's catalog
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.ProductRequest true "Product"
// @Success      201 {object} catalogapp.ProductResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	var req catalogapp.ProductRequest
	if !h.bindJSON(c, &req) {
		return
	}
	product, err := h.productService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update handles PUT /api/products/:id
// @Summary      Update a product
// @Description  Replace a product's name, price and stock
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body catalogapp.ProductRequest true "Product"
// @Success      200 {object} catalogapp.ProductResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	productID, ok := h.pathID(c, catalog.ErrProductNotFound)
	if !ok {
		return
	}
	var req catalogapp.ProductRequest
	if !h.bindJSON(c, &req) {
		return
	}
	product, err := h.productService.Update(c.Request.Context(), tenantID, productID, req)
	if err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/products/:id
// @Summary      Delete a product
// @Description  Remove a product from the catalog
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	productID, ok := h.pathID(c, catalog.ErrProductNotFound)
	if !ok {
		return
	}
	if err := h.productService.Delete(c.Request.Context(), tenantID, productID); err != nil {
		h.HandleError(c, err, msgServerError)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: MsgProductDeleted})
}
