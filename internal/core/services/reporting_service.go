package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/Ommishra2/Dataintellect/internal/core/ports/repositories"
	portssvc "github.com/Ommishra2/Dataintellect/internal/core/ports/services"
	"github.com/Ommishra2/Dataintellect/internal/dto"
)

// riskExposurePlaceholder stands in for the risk score until scoring exists.
const riskExposurePlaceholder = "Low (Stable)"

// reportingService implements the read-only dashboard queries.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	totals, err := s.reportingRepo.GetSummaryTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve summary totals")
		return nil, fmt.Errorf("failed to retrieve summary totals: %w", err)
	}

	netProfit := totals.TotalRevenue.Sub(totals.TotalExpense)

	return &dto.SummaryResponse{
		TotalRevenue:   totals.TotalRevenue.InexactFloat64(),
		TotalExpense:   totals.TotalExpense.InexactFloat64(),
		NetProfit:      netProfit.InexactFloat64(),
		CurrentBalance: totals.TotalBalance.InexactFloat64(),
		RiskExposure:   riskExposurePlaceholder,
	}, nil
}

func (s *reportingService) Trends(ctx context.Context) ([]dto.TrendPoint, error) {
	points, err := s.reportingRepo.GetMonthlyTrends(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly trends")
		return nil, fmt.Errorf("failed to retrieve monthly trends: %w", err)
	}

	trend := make([]dto.TrendPoint, len(points))
	for i, p := range points {
		trend[i] = dto.TrendPoint{
			Month:   p.Month,
			Revenue: p.Revenue.InexactFloat64(),
			Expense: p.Expense.InexactFloat64(),
		}
	}

	s.LogInfo(ctx, "Monthly trends generated", slog.Int("months", len(trend)))
	return trend, nil
}

func (s *reportingService) Records(ctx context.Context, skip, limit int) (*dto.RecordsPageResponse, error) {
	page, err := s.reportingRepo.FindRecords(ctx, skip, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve records page",
			slog.Int("skip", skip), slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to retrieve records: %w", err)
	}

	data := make([]dto.FinancialRecordResponse, len(page.Records))
	for i := range page.Records {
		data[i] = dto.ToFinancialRecordResponse(&page.Records[i])
	}

	return &dto.RecordsPageResponse{
		Total: page.Total,
		Skip:  skip,
		Limit: limit,
		Data:  data,
	}, nil
}
