package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/domain/catalog"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List returns the tenant's products ordered by name
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return ToProductResponses(products), nil
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req ProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(tenantID, req.Name, priceOf(req), req.Stock)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	s.logger.Debug("Product created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("product_id", product.ID.String()),
	)
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update replaces a product's name, price and stock
func (s *ProductService) Update(ctx context.Context, tenantID, productID uuid.UUID, req ProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForTenant(ctx, tenantID, productID)
	if err != nil {
		return nil, notFoundOr(err, "find product")
	}
	if err := product.Update(req.Name, priceOf(req), req.Stock); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product. Sales keep their snapshot of it.
func (s *ProductService) Delete(ctx context.Context, tenantID, productID uuid.UUID) error {
	if err := s.productRepo.DeleteForTenant(ctx, tenantID, productID); err != nil {
		return notFoundOr(err, "delete product")
	}
	return nil
}

func priceOf(req ProductRequest) decimal.Decimal {
	if req.Price == nil {
		return decimal.Zero
	}
	return *req.Price
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, catalog.ErrProductNotFound) {
		return catalog.ErrProductNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
