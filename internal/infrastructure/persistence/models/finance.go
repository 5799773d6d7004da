package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/finance"
)

// ExpenseModel is the persistence model for the Expense domain entity.
type ExpenseModel struct {
	TenantAggregateModel
	Description string          `gorm:"type:varchar(500);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Date        time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense entity.
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		TenantAggregateRoot: m.TenantRoot(),
		Description:         m.Description,
		Amount:              m.Amount,
		Date:                m.Date,
	}
}

// FromDomain populates the persistence model from a domain Expense entity.
func (m *ExpenseModel) FromDomain(e *finance.Expense) {
	m.SetTenantRoot(e.TenantAggregateRoot)
	m.Description = e.Description
	m.Amount = e.Amount
	m.Date = e.Date.UTC()
}

// ExpenseModelFromDomain creates a new persistence model from a domain Expense entity.
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{}
	m.FromDomain(e)
	return m
}
