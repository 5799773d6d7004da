package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
// TenantID is declared here rather than through TenantAggregateModel so it
// can take part in the (tenant_id, phone) unique index.
type CustomerModel struct {
	AggregateModel
	TenantID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_customer_tenant_phone,priority:1"`
	Name               string          `gorm:"type:varchar(200);not null;index"`
	Phone              string          `gorm:"type:varchar(30);not null;uniqueIndex:idx_customer_tenant_phone,priority:2"`
	OutstandingBalance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	c := &partner.Customer{
		Name:               m.Name,
		Phone:              m.Phone,
		OutstandingBalance: m.OutstandingBalance,
	}
	c.BaseAggregateRoot = m.AggregateRoot()
	c.TenantID = m.TenantID
	return c
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.SetAggregateRoot(c.BaseAggregateRoot)
	m.TenantID = c.TenantID
	m.Name = c.Name
	m.Phone = c.Phone
	m.OutstandingBalance = c.OutstandingBalance
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
