package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/domain/finance"
)

// ExpenseService records and lists expenses
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
	loc         *time.Location
	logger      *zap.Logger
	now         func() time.Time
}

// NewExpenseService creates a new ExpenseService. Day boundaries use loc.
func NewExpenseService(expenseRepo finance.ExpenseRepository, loc *time.Location, logger *zap.Logger) *ExpenseService {
	if loc == nil {
		loc = time.Local
	}
	return &ExpenseService{
		expenseRepo: expenseRepo,
		loc:         loc,
		logger:      logger,
		now:         time.Now,
	}
}

// Create records an expense
func (s *ExpenseService) Create(ctx context.Context, tenantID uuid.UUID, req CreateExpenseRequest) (*ExpenseResponse, error) {
	date, err := s.parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	amount := decimal.Zero
	if req.Amount != nil {
		amount = *req.Amount
	}

	expense, err := finance.NewExpense(tenantID, req.Description, amount, date)
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	s.logger.Debug("Expense recorded",
		zap.String("tenant_id", tenantID.String()),
		zap.String("expense_id", expense.ID.String()),
	)
	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// ListByDay returns expenses dated on the given day, from midnight up to
// but excluding the next midnight
func (s *ExpenseService) ListByDay(ctx context.Context, tenantID uuid.UUID, day string) ([]ExpenseResponse, error) {
	window, err := finance.ParseDay(day, s.loc, s.now())
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.FindDatedBetween(ctx, tenantID, window.Start, window.Next, false)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = ToExpenseResponse(&expenses[i])
	}
	return out, nil
}

func (s *ExpenseService) parseDate(value string) (time.Time, error) {
	if value == "" {
		return s.now(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(finance.DateLayout, value, s.loc)
	if err != nil {
		return time.Time{}, finance.ErrInvalidDate
	}
	return t, nil
}
