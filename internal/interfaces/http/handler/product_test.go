package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	catalogapp "github.com/vyapar/backend/internal/application/catalog"
	"github.com/vyapar/backend/internal/domain/catalog"
	"github.com/vyapar/backend/internal/interfaces/http/dto"
)

func newProductRouter(tenantID uuid.UUID, repo *MockProductRepository) *gin.Engine {
	h := NewProductHandler(catalogapp.NewProductService(repo, zap.NewNop()))
	router := newTenantRouter(tenantID)
	router.GET("/api/products", h.List)
	router.POST("/api/products", h.Create)
	router.PUT("/api/products/:id", h.Update)
	router.DELETE("/api/products/:id", h.Delete)
	return router
}

func TestProductHandler_List(t *testing.T) {
	tenantID := uuid.New()
	repo := new(MockProductRepository)
	atta, _ := catalog.NewProduct(tenantID, "Atta 5kg", dec("240"), 10)
	rice, _ := catalog.NewProduct(tenantID, "Rice 1kg", dec("60"), 0)
	repo.On("FindAllForTenant", mock.Anything, tenantID).Return([]catalog.Product{*atta, *rice}, nil)

	w := doJSON(newProductRouter(tenantID, repo), http.MethodGet, "/api/products", "")

	require.Equal(t, http.StatusOK, w.Code)
	products := decodeBody[[]catalogapp.ProductResponse](t, w)
	require.Len(t, products, 2)
	assert.Equal(t, "Atta 5kg", products[0].Name)
	assert.Equal(t, tenantID, products[0].TenantID)
	assert.True(t, dec("240").Equal(products[0].Price))
}

func TestProductHandler_Create(t *testing.T) {
	tenantID := uuid.New()

	t.Run("created", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(p *catalog.Product) bool {
			return p.TenantID == tenantID && p.Name == "Sugar" && p.Stock == 25
		})).Return(nil)

		w := doJSON(newProductRouter(tenantID, repo), http.MethodPost, "/api/products", `{"name":"Sugar","price":45.5,"stock":25}`)

		require.Equal(t, http.StatusCreated, w.Code)
		product := decodeBody[catalogapp.ProductResponse](t, w)
		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.True(t, dec("45.5").Equal(product.Price))
	})

	t.Run("missing price", func(t *testing.T) {
		w := doJSON(newProductRouter(tenantID, new(MockProductRepository)), http.MethodPost, "/api/products", `{"name":"Sugar"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decodeErr(t, w).Code)
	})

	t.Run("negative price", func(t *testing.T) {
		w := doJSON(newProductRouter(tenantID, new(MockProductRepository)), http.MethodPost, "/api/products", `{"name":"Sugar","price":-1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Price cannot be negative", decodeErr(t, w).Message)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))
		w := doJSON(newProductRouter(tenantID, repo), http.MethodPost, "/api/products", `{"name":"Sugar","price":45}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, dto.ErrCodeInternal, decodeErr(t, w).Code)
	})
}

func TestProductHandler_Update(t *testing.T) {
	tenantID := uuid.New()
	existing, _ := catalog.NewProduct(tenantID, "Sugar", dec("45"), 10)

	repo := new(MockProductRepository)
	repo.On("FindByIDForTenant", mock.Anything, tenantID, existing.ID).Return(existing, nil)
	repo.On("FindByIDForTenant", mock.Anything, tenantID, mock.Anything).Return(nil, catalog.ErrProductNotFound)
	repo.On("Save", mock.Anything, existing).Return(nil)
	router := newProductRouter(tenantID, repo)

	w := doJSON(router, http.MethodPut, "/api/products/"+existing.ID.String(), `{"name":"Sugar 1kg","price":48,"stock":-2}`)
	require.Equal(t, http.StatusOK, w.Code)
	product := decodeBody[catalogapp.ProductResponse](t, w)
	assert.Equal(t, "Sugar 1kg", product.Name)
	assert.Equal(t, -2, product.Stock)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		w := doJSON(router, http.MethodPut, "/api/products/"+id, `{"name":"X","price":1}`)
		assert.Equal(t, http.StatusNotFound, w.Code, id)
		assert.Equal(t, "Product not found or you do not have permission.", decodeErr(t, w).Message)
	}
}

func TestProductHandler_Delete(t *testing.T) {
	tenantID := uuid.New()
	id := uuid.New()
	foreign := uuid.New()

	repo := new(MockProductRepository)
	repo.On("DeleteForTenant", mock.Anything, tenantID, id).Return(nil)
	repo.On("DeleteForTenant", mock.Anything, tenantID, foreign).Return(catalog.ErrProductNotFound)
	router := newProductRouter(tenantID, repo)

	w := doJSON(router, http.MethodDelete, "/api/products/"+id.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MsgProductDeleted, decodeBody[dto.MessageResponse](t, w).Message)

	w = doJSON(router, http.MethodDelete, "/api/products/"+foreign.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeErr(t, w).Code)
}
