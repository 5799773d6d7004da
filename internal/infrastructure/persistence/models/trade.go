package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/shared"
	"github.com/vyapar/backend/internal/domain/trade"
)

// SaleModel is the persistence model for the Sale aggregate.
// (tenant_id, bill_number) is unique.
type SaleModel struct {
	AggregateModel
	TenantID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_sale_tenant_bill,priority:1"`
	BillNumber    int64           `gorm:"not null;uniqueIndex:idx_sale_tenant_bill,priority:2"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null;index"`
	CustomerName  string          `gorm:"type:varchar(200)"`
	CustomerPhone string          `gorm:"type:varchar(30)"`
	Discount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	Items         []SaleItemModel `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel is one snapshot line of a sale
type SaleItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineNo    int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Quantity  int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// BillCounterModel holds the last bill number handed out per tenant
type BillCounterModel struct {
	TenantID  uuid.UUID `gorm:"type:uuid;primary_key"`
	LastValue int64     `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BillCounterModel) TableName() string {
	return "bill_counters"
}

// ToDomain converts the persistence model to a domain Sale
func (m *SaleModel) ToDomain() *trade.Sale {
	items := make([]trade.SaleItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = trade.SaleItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return &trade.Sale{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: m.AggregateRoot(),
			TenantID:          m.TenantID,
		},
		BillNumber:          m.BillNumber,
		Items:               items,
		TotalAmount:         m.TotalAmount,
		PaymentMethod:       trade.PaymentMethod(m.PaymentMethod),
		CustomerName:        m.CustomerName,
		CustomerPhone:       m.CustomerPhone,
		Discount:            m.Discount,
		TaxRate:             m.TaxRate,
	}
}

// FromDomain populates the persistence model from a domain Sale.
// Line items get fresh IDs and keep their checkout order in LineNo.
func (m *SaleModel) FromDomain(s *trade.Sale) {
	m.SetAggregateRoot(s.BaseAggregateRoot)
	m.TenantID = s.TenantID
	m.BillNumber = s.BillNumber
	m.TotalAmount = s.TotalAmount
	m.PaymentMethod = s.PaymentMethod.String()
	m.CustomerName = s.CustomerName
	m.CustomerPhone = s.CustomerPhone
	m.Discount = s.Discount
	m.TaxRate = s.TaxRate
	m.Items = make([]SaleItemModel, len(s.Items))
	for i, it := range s.Items {
		m.Items[i] = SaleItemModel{
			ID:        uuid.New(),
			SaleID:    s.ID,
			LineNo:    i + 1,
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
}

// SaleModelFromDomain creates a new persistence model from a domain Sale
func SaleModelFromDomain(s *trade.Sale) *SaleModel {
	m := &SaleModel{}
	m.FromDomain(s)
	return m
}
