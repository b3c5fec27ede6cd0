package repositories

import (
	"context"

	"github.com/Ommishra2/Dataintellect/internal/core/domain"
)

// ReportingRepository defines the read-only aggregate queries backing the dashboard.
type ReportingRepository interface {
	// GetSummaryTotals returns store-wide sums of revenue, expense and balance.
	// All sums are zero when no rows exist.
	GetSummaryTotals(ctx context.Context) (*domain.SummaryTotals, error)

	// GetMonthlyTrends returns per-month sums of revenue and expense over the
	// raw records, ordered by month ascending.
	GetMonthlyTrends(ctx context.Context) ([]domain.MonthlyTrendPoint, error)

	// FindRecords returns one pagination window of raw records plus the total
	// row count independent of the window.
	FindRecords(ctx context.Context, skip, limit int) (*domain.RecordPage, error)
}
