package models

import (
	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/catalog"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	TenantAggregateModel
	Name  string          `gorm:"type:varchar(200);not null;index"`
	Price decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Stock int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		TenantAggregateRoot: m.TenantRoot(),
		Name:                m.Name,
		Price:               m.Price,
		Stock:               m.Stock,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.SetTenantRoot(p.TenantAggregateRoot)
	m.Name = p.Name
	m.Price = p.Price
	m.Stock = p.Stock
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
