package finance

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapar/backend/internal/domain/shared"
)

// Expense is money spent by the business on a given date
type Expense struct {
	shared.TenantAggregateRoot
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// NewExpense creates an expense dated at date
func NewExpense(tenantID uuid.UUID, description string, amount decimal.Decimal, date time.Time) (*Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Expense description is required")
	}
	if len(description) > 500 {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Expense description cannot exceed 500 characters")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be greater than zero")
	}

	return &Expense{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Description:         description,
		Amount:              amount,
		Date:                date,
	}, nil
}

// ExpenseRepository persists expenses
type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error

	// FindDatedBetween lists expenses with from <= date < to when inclusiveEnd
	// is false, or from <= date <= to when it is true, oldest first
	FindDatedBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time, inclusiveEnd bool) ([]Expense, error)
}
