package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/catalog"
)

// ProductRequest is the body of both create and update
type ProductRequest struct {
	Name  string           `json:"name" binding:"required,max=200" example:"Parle-G 100g"`
	Price *decimal.Decimal `json:"price" binding:"required" swaggertype:"number" example:"10"`
	Stock int              `json:"stock" example:"48"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID        uuid.UUID       `json:"_id" swaggertype:"string" format:"uuid"`
	TenantID  uuid.UUID       `json:"user" swaggertype:"string" format:"uuid"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" swaggertype:"number"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToProductResponse converts a domain product to its response
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		TenantID:  p.TenantID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}
