package services

import (
	"context"

	"github.com/Ommishra2/Dataintellect/internal/dto"
)

// ReportingService provides the read-only dashboard queries.
type ReportingService interface {
	// Summary returns store-wide totals and net profit.
	Summary(ctx context.Context) (*dto.SummaryResponse, error)

	// Trends returns the monthly revenue-vs-expense series, ordered ascending.
	Trends(ctx context.Context) ([]dto.TrendPoint, error)

	// Records returns one pagination window of raw records.
	Records(ctx context.Context, skip, limit int) (*dto.RecordsPageResponse, error)
}
