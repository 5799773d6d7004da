package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/shared"
)

// Product is a sellable item in a tenant's inventory.
// Stock has no floor: billing may drive it negative.
type Product struct {
	shared.TenantAggregateRoot
	Name  string
	Price decimal.Decimal
	Stock int
}

// ErrProductNotFound is returned for absent and foreign products alike
var ErrProductNotFound = shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found or you do not have permission.")

// NewProduct creates a new product
func NewProduct(tenantID uuid.UUID, name string, price decimal.Decimal, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	return &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Price:               price,
		Stock:               stock,
	}, nil
}

// Update replaces name, price and stock
func (p *Product) Update(name string, price decimal.Decimal, stock int) error {
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}

	p.Name = name
	p.Price = price
	p.Stock = stock
	p.IncrementVersion()
	return nil
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}
