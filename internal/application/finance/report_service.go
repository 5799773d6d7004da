package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vyapar/backend/internal/domain/finance"
	"github.com/vyapar/backend/internal/domain/identity"
	"github.com/vyapar/backend/internal/domain/trade"
	"github.com/vyapar/backend/internal/infrastructure/telemetry"
)

// ReportRenderer turns a daily report into a downloadable document
type ReportRenderer interface {
	Render(businessName string, report *finance.DailyReport, sales []trade.Sale) ([]byte, error)
	FileName(report *finance.DailyReport) string
	ContentType() string
}

// ReportService aggregates a day of sales and expenses
type ReportService struct {
	saleRepo    trade.SaleRepository
	expenseRepo finance.ExpenseRepository
	userRepo    identity.UserRepository
	renderer    ReportRenderer
	loc         *time.Location
	logger      *zap.Logger
	now         func() time.Time
}

// NewReportService creates a new ReportService. Day boundaries use loc.
func NewReportService(
	saleRepo trade.SaleRepository,
	expenseRepo finance.ExpenseRepository,
	userRepo identity.UserRepository,
	renderer ReportRenderer,
	loc *time.Location,
	logger *zap.Logger,
) *ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &ReportService{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		loc:         loc,
		logger:      logger,
		now:         time.Now,
	}
}

// Daily returns the summary for one day
func (s *ReportService) Daily(ctx context.Context, tenantID uuid.UUID, day string) (*DailyReportResponse, error) {
	report, _, err := s.build(ctx, tenantID, day)
	if err != nil {
		return nil, err
	}
	resp := ToDailyReportResponse(report)
	return &resp, nil
}

// Export renders the day's summary and bill list as a spreadsheet
func (s *ReportService) Export(ctx context.Context, tenantID uuid.UUID, day string) (*ExportFile, error) {
	report, sales, err := s.build(ctx, tenantID, day)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("find business: %w", err)
	}

	_, span := telemetry.StartServiceSpan(ctx, "ReportService", "Render")
	data, err := s.renderer.Render(user.BusinessInfo.Name, report, sales)
	telemetry.RecordError(span, err)
	span.End()
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	return &ExportFile{
		FileName:    s.renderer.FileName(report),
		ContentType: s.renderer.ContentType(),
		Data:        data,
	}, nil
}

func (s *ReportService) build(ctx context.Context, tenantID uuid.UUID, day string) (*finance.DailyReport, []trade.Sale, error) {
	window, err := finance.ParseDay(day, s.loc, s.now())
	if err != nil {
		return nil, nil, err
	}

	sales, err := s.saleRepo.FindCreatedBetween(ctx, tenantID, window.Start, window.End)
	if err != nil {
		return nil, nil, fmt.Errorf("load sales: %w", err)
	}
	expenses, err := s.expenseRepo.FindDatedBetween(ctx, tenantID, window.Start, window.End, true)
	if err != nil {
		return nil, nil, fmt.Errorf("load expenses: %w", err)
	}

	s.logger.Debug("Daily report",
		zap.String("tenant_id", tenantID.String()),
		zap.Time("from", window.Start),
		zap.Int("sales", len(sales)),
		zap.Int("expenses", len(expenses)),
	)
	return finance.BuildDailyReport(window, sales, expenses), sales, nil
}
